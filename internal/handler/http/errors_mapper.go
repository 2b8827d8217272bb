// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vera-node/internal/identity"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/service"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/internal/validators"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
)

// Error codes of the API error body.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidSecretKey   = "INVALID_SECRET_KEY"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeKeyExpired         = "KEY_EXPIRED"
	CodeUserBlocked        = "USER_BLOCKED"
	CodeInvalidRumor       = "INVALID_RUMOR"
	CodeAlreadyVoted       = "ALREADY_VOTED"
	CodeVotingClosed       = "VOTING_CLOSED"
	CodeNotFound           = "NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeLedgerIntegrity    = "LEDGER_INTEGRITY_VIOLATION"
	CodeInternal           = "INTERNAL"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// errorTable is matched in order with errors.Is; the first hit wins.
var errorTable = []errorMapping{
	{identity.ErrMalformedSecretKey, http.StatusBadRequest, CodeInvalidSecretKey},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
	{service.ErrKeyExpired, http.StatusUnauthorized, CodeKeyExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, CodeUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, CodeUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, CodeUnauthorized},
	{ErrMissingProfileInfo, http.StatusUnauthorized, CodeUnauthorized},

	{service.ErrUserBlocked, http.StatusForbidden, CodeUserBlocked},
	{service.ErrAdminLoginDisabled, http.StatusForbidden, CodeForbidden},
	{ErrForbidden, http.StatusForbidden, CodeForbidden},

	{store.ErrAlreadyVoted, http.StatusConflict, CodeAlreadyVoted},
	{voting.ErrVotingClosed, http.StatusConflict, CodeVotingClosed},
	{voting.ErrRumorFinal, http.StatusConflict, CodeVotingClosed},
	{store.ErrProfileAlreadyExists, http.StatusConflict, CodeInvalidRequest},

	{store.ErrRumorNotFound, http.StatusNotFound, CodeNotFound},
	{store.ErrProfileNotFound, http.StatusNotFound, CodeNotFound},
	{ErrRouteNotFound, http.StatusNotFound, CodeNotFound},

	{service.ErrRumorRejected, http.StatusUnprocessableEntity, CodeInvalidRumor},
	{service.ErrValidatorUnavailable, http.StatusServiceUnavailable, CodeInternal},
	{service.ErrLedgerIntegrity, http.StatusInternalServerError, CodeLedgerIntegrity},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, CodeInvalidRequest},
	{voting.ErrInvalidVotingWindow, http.StatusBadRequest, CodeInvalidRequest},
	{ErrInvalidJSON, http.StatusBadRequest, CodeInvalidRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest, CodeInvalidRequest},
	{validators.ErrInvalidArea, http.StatusBadRequest, CodeInvalidRequest},
	{validators.ErrEmptyContent, http.StatusBadRequest, CodeInvalidRequest},
	{validators.ErrContentTooLong, http.StatusBadRequest, CodeInvalidRequest},
	{validators.ErrMissingDeadline, http.StatusBadRequest, CodeInvalidRequest},
	{validators.ErrInvalidVoteType, http.StatusBadRequest, CodeInvalidRequest},
	{validators.ErrEmptyRumorID, http.StatusBadRequest, CodeInvalidRequest},
	{validators.ErrEmptyProfileID, http.StatusBadRequest, CodeInvalidRequest},
	{validators.ErrInvalidState, http.StatusBadRequest, CodeInvalidRequest},
	{validators.ErrEmptyCredentials, http.StatusBadRequest, CodeInvalidRequest},
	{validators.ErrAmbiguousUnblock, http.StatusBadRequest, CodeInvalidRequest},
}

// errorResponse translates err into the status and body sent to the client.
// Messages of 5xx responses never leak internals, except for the integrity
// report which names the failing block.
func errorResponse(err error) (int, models.ErrorResponse) {
	var rejection *service.RejectionError
	if errors.As(err, &rejection) {
		msg := rejection.Reason
		if msg == "" {
			msg = service.ErrRumorRejected.Error()
		}
		return http.StatusUnprocessableEntity, models.ErrorResponse{Code: CodeInvalidRumor, Message: msg}
	}

	for _, m := range errorTable {
		if !errors.Is(err, m.target) {
			continue
		}
		msg := err.Error()
		if m.status >= http.StatusInternalServerError && m.code != CodeLedgerIntegrity {
			msg = m.target.Error()
		}
		return m.status, models.ErrorResponse{Code: m.code, Message: msg}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Code: CodeInternal, Message: http.StatusText(http.StatusInternalServerError)}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)

	log := logger.FromRequest(r)
	ev := log.Warn()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).Str("code", body.Code).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, body, status)
}
