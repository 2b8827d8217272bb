// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/models"
)

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	profileID, err := sessionProfileID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := h.services.UserService.Stats(r.Context(), profileID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) userRumors(w http.ResponseWriter, r *http.Request) {
	profileID, err := sessionProfileID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rumors, err := h.services.UserService.Rumors(r.Context(), profileID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if rumors == nil {
		rumors = []models.Rumor{}
	}
	utils.WriteJSON(w, rumors, http.StatusOK)
}
