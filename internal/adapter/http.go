// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/vera-node/internal/config"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/models"
)

const validatePath = "/validate"

type httpAIValidator struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewAIValidator returns the validator configured in cfg. Without an
// AIValidatorURL every submission is accepted.
func NewAIValidator(cfg config.Adapter, log *logger.Logger) (AIValidator, error) {
	if strings.TrimSpace(cfg.AIValidatorURL) == "" {
		log.Warn().Str("func", "NewAIValidator").Msg("no AI validator configured, accepting all rumors")
		return acceptAll{}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.AIValidatorURL)
	if err != nil {
		return nil, fmt.Errorf("invalid AI validator address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &httpAIValidator{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Validate POSTs {"content": ...} to /validate and decodes an
// [models.AIValidation] from the answer.
func (h *httpAIValidator) Validate(ctx context.Context, content string) (models.AIValidation, error) {
	log := logger.FromContext(ctx)

	req := h.client.R().SetContext(ctx)
	if id := utils.GetTraceIDFromContext(ctx); id != "" {
		req.SetHeader("X-Trace-ID", id)
	}

	resp, err := req.
		SetBody(models.ValidateContentRequest{Content: content}).
		Post(validatePath)
	if err != nil {
		log.Err(err).Str("func", "*httpAIValidator.Validate").Msg("validator request failed")
		return models.AIValidation{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpAIValidator.Validate").Int("status", resp.StatusCode()).Msg("validator rejected request")
		return models.AIValidation{}, err
	}

	var verdict models.AIValidation
	if err = json.Unmarshal(resp.Body(), &verdict); err != nil {
		return models.AIValidation{}, fmt.Errorf("%w: %w", ErrMalformedVerdict, err)
	}
	if verdict.SuggestedArea != "" && !verdict.SuggestedArea.Valid() {
		verdict.SuggestedArea = ""
	}

	return verdict, nil
}

// acceptAll stands in when no validator is configured.
type acceptAll struct{}

func (acceptAll) Validate(context.Context, string) (models.AIValidation, error) {
	return models.AIValidation{IsValid: true, IsRumor: true, Reason: "validation disabled"}, nil
}
