// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/models"
)

// listBlocks serves GET /ledger/blocks?from=&limit=.
func (h *Handler) listBlocks(w http.ResponseWriter, r *http.Request) {
	from, err := queryUint(r, "from")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryUint(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	blocks, err := h.services.LedgerService.ListBlocks(r.Context(), int64(from), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if blocks == nil {
		blocks = []models.LedgerBlock{}
	}
	utils.WriteJSON(w, blocks, http.StatusOK)
}
