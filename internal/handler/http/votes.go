// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/models"
	"github.com/go-chi/chi/v5"
)

// castVote records a vote. The secret key arrives in X-Secret-Key, never in
// the body, so it stays out of access logs and request dumps.
func (h *Handler) castVote(w http.ResponseWriter, r *http.Request) {
	profileID, err := sessionProfileID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CastVoteRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ProfileID = profileID
	req.RumorID = chi.URLParam(r, "rumorID")
	req.SecretKey = r.Header.Get(secretKeyHeader)

	vote, err := h.services.VoteService.CastVote(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, map[string]models.Vote{"vote": vote}, http.StatusCreated)
}

func (h *Handler) voteStatus(w http.ResponseWriter, r *http.Request) {
	profileID, err := sessionProfileID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status, err := h.services.VoteService.VoteStatus(r.Context(), models.VoteStatusRequest{
		ProfileID: profileID,
		SecretKey: r.Header.Get(secretKeyHeader),
		RumorID:   chi.URLParam(r, "rumorID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, status, http.StatusOK)
}
