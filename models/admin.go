// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AdminStats is the dashboard summary shown to administrators.
type AdminStats struct {
	Users struct {
		Total   int64 `json:"total"`
		Active  int64 `json:"active"`
		Blocked int64 `json:"blocked"`
	} `json:"users"`

	Rumors struct {
		Total     int64 `json:"total"`
		Active    int64 `json:"active"`
		Locked    int64 `json:"locked"`
		Finalized int64 `json:"finalized"`
	} `json:"rumors"`

	Votes struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"votes"`

	Blockchain struct {
		TotalBlocks int64 `json:"totalBlocks"`
	} `json:"blockchain"`
}

// BlockedProfile is one entry of the blocked users list.
type BlockedProfile struct {
	ID        string    `json:"id"`
	Area      Area      `json:"area"`
	Points    float64   `json:"points"`
	UpdatedAt time.Time `json:"blockedAt"`
}
