// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to services outside the node.
//
// The only collaborator today is the AI content validator that screens
// rumors before they are posted ([AIValidator]). Transport failures are
// mapped to the sentinels in errors.go so callers can use [errors.Is]
// regardless of protocol.
package adapter

import (
	"context"

	"github.com/MKhiriev/vera-node/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AIValidator judges whether a piece of text is a well-formed rumor.
type AIValidator interface {
	// Validate returns the validator's verdict on content. An error means no
	// verdict was obtained; it never encodes a rejection.
	Validate(ctx context.Context, content string) (models.AIValidation, error)
}
