// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AIValidation is the verdict of the external content-validation service.
// A rumor is accepted only when both IsValid and IsRumor are true.
type AIValidation struct {
	IsValid       bool   `json:"isValid"`
	IsRumor       bool   `json:"isRumor"`
	Reason        string `json:"reason,omitempty"`
	SuggestedArea Area   `json:"suggestedArea,omitempty"`
}

// Accepted reports whether the content may be posted as a rumor.
func (v AIValidation) Accepted() bool {
	return v.IsValid && v.IsRumor
}
