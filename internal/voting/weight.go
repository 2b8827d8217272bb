// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package voting

import (
	"math"

	"github.com/MKhiriev/vera-node/models"
)

const (
	WithinAreaMultiplier  = 1.5
	OutsideAreaMultiplier = 0.5
)

// IsWithinArea reports whether a voter from voterArea counts as within the
// area of a rumor targeting rumorArea. General rumors concern everyone.
func IsWithinArea(voterArea, rumorArea models.Area) bool {
	return rumorArea == models.AreaGeneral || voterArea == rumorArea
}

// ComputeWeight returns userPoints*m + baseWeight, never less than
// baseWeight, where m is 1.5 within the area and 0.5 outside it.
func ComputeWeight(userPoints float64, isWithinArea bool, baseWeight float64) float64 {
	multiplier := OutsideAreaMultiplier
	if isWithinArea {
		multiplier = WithinAreaMultiplier
	}
	return math.Max(userPoints*multiplier+baseWeight, baseWeight)
}
