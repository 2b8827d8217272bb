// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Area is the organizational affiliation of a profile and the target audience
// of a rumor. Vote weight depends on whether the voter's area matches the
// rumor's area.
type Area string

const (
	AreaSEECS   Area = "SEECS"
	AreaNBS     Area = "NBS"
	AreaASAB    Area = "ASAB"
	AreaSINES   Area = "SINES"
	AreaSCME    Area = "SCME"
	AreaS3H     Area = "S3H"
	AreaGeneral Area = "General"
)

// Areas lists every accepted area in display order.
var Areas = []Area{AreaSEECS, AreaNBS, AreaASAB, AreaSINES, AreaSCME, AreaS3H, AreaGeneral}

// Valid reports whether a is one of the known areas.
func (a Area) Valid() bool {
	for _, known := range Areas {
		if a == known {
			return true
		}
	}
	return false
}

func (a Area) String() string {
	return string(a)
}
