// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/models"
)

func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.AdminService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) blockedUsers(w http.ResponseWriter, r *http.Request) {
	blocked, err := h.services.AdminService.BlockedProfiles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if blocked == nil {
		blocked = []models.BlockedProfile{}
	}
	utils.WriteJSON(w, map[string][]models.BlockedProfile{"blockedProfiles": blocked}, http.StatusOK)
}

func (h *Handler) unblockUser(w http.ResponseWriter, r *http.Request) {
	var req models.UnblockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.services.AdminService.Unblock(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	admin, _ := utils.GetProfileIDFromContext(r.Context())
	logger.FromRequest(r).Info().Str("admin", admin).Str("profile_id", p.ID).Msg("profile unblocked by admin")
	utils.WriteJSON(w, map[string]models.Profile{"profile": p}, http.StatusOK)
}

// verifyLedger answers 500 LEDGER_INTEGRITY_VIOLATION for a broken chain;
// the report itself is logged by the ledger service.
func (h *Handler) verifyLedger(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.LedgerService.Verify(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, report, http.StatusOK)
}
