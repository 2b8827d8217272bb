// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package voting

import (
	"testing"

	"github.com/MKhiriev/vera-node/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeWeight(t *testing.T) {
	tests := []struct {
		name   string
		points float64
		within bool
		want   float64
	}{
		{name: "within area", points: 10, within: true, want: 16},
		{name: "outside area", points: 5, within: false, want: 3.5},
		{name: "zero points", points: 0, within: true, want: 1},
		{name: "negative points floored within", points: -40, within: true, want: 1},
		{name: "negative points floored outside", points: -0.5, within: false, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeWeight(tt.points, tt.within, 1), 1e-9)
		})
	}
}

func TestComputeWeight_FloorHoldsForAnyBase(t *testing.T) {
	for _, base := range []float64{0.5, 1, 2, 10} {
		for p := -1000.0; p < 0; p += 7.3 {
			assert.GreaterOrEqual(t, ComputeWeight(p, true, base), base)
			assert.GreaterOrEqual(t, ComputeWeight(p, false, base), base)
		}
	}
}

func TestComputeWeight_AreaMultiplier(t *testing.T) {
	for p := 0.0; p < 500; p += 13 {
		assert.GreaterOrEqual(t, ComputeWeight(p, true, 1), ComputeWeight(p, false, 1))
	}

	ratio := ComputeWeight(1e9, true, 1) / ComputeWeight(1e9, false, 1)
	assert.InDelta(t, 3.0, ratio, 1e-6)
}

func TestIsWithinArea(t *testing.T) {
	assert.True(t, IsWithinArea(models.AreaSEECS, models.AreaSEECS))
	assert.False(t, IsWithinArea(models.AreaNBS, models.AreaSEECS))
	assert.True(t, IsWithinArea(models.AreaNBS, models.AreaGeneral))
	assert.False(t, IsWithinArea(models.AreaGeneral, models.AreaS3H))
}
