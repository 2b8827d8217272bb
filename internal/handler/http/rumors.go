// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/models"
	"github.com/go-chi/chi/v5"
)

// listRumors serves GET /rumors?area=&status=&limit=&offset=.
func (h *Handler) listRumors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.RumorFilter{
		Area:  models.Area(strings.ToUpper(q.Get("area"))),
		State: models.RumorState(strings.ToUpper(q.Get("status"))),
	}

	var err error
	if filter.Limit, err = queryUint(r, "limit"); err != nil {
		writeError(w, r, err)
		return
	}
	if filter.Offset, err = queryUint(r, "offset"); err != nil {
		writeError(w, r, err)
		return
	}

	rumors, err := h.services.RumorService.ListRumors(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if rumors == nil {
		rumors = []models.Rumor{}
	}
	utils.WriteJSON(w, rumors, http.StatusOK)
}

func (h *Handler) createRumor(w http.ResponseWriter, r *http.Request) {
	profileID, err := sessionProfileID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateRumorRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.PosterID = profileID

	resp, err := h.services.RumorService.CreateRumor(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) validateContent(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateContentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	verdict, err := h.services.RumorService.ValidateContent(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, verdict, http.StatusOK)
}

func (h *Handler) getRumor(w http.ResponseWriter, r *http.Request) {
	rumor, err := h.services.RumorService.GetRumor(r.Context(), chi.URLParam(r, "rumorID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, map[string]models.Rumor{"rumor": rumor}, http.StatusOK)
}

func (h *Handler) getRumorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.RumorService.GetStats(r.Context(), chi.URLParam(r, "rumorID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, stats, http.StatusOK)
}
