// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("profile_id", resp.Profile.ID).Msg("profile registered")
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) recover(w http.ResponseWriter, r *http.Request) {
	var req models.RecoverRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Recover(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("profile_id", resp.Profile.ID).Msg("profile re-keyed")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	profileID, err := sessionProfileID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.services.AuthService.Profile(r.Context(), profileID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, map[string]models.Profile{"profile": p}, http.StatusOK)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.AdminLogin(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("admin", token.Subject).Msg("admin logged in")
	utils.WriteJSON(w, map[string]string{"token": token.SignedString}, http.StatusOK)
}
