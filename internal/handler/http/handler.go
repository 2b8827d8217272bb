// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/service"
)

type Handler struct {
	services *service.Services

	// events serves the live lifecycle feed; nil disables the route.
	events http.Handler

	// requestTimeout bounds API requests through the request context; zero
	// disables it. The event feed is exempt.
	requestTimeout time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewHandler(services *service.Services, events http.Handler, m *metrics.Metrics, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		events:         events,
		requestTimeout: requestTimeout,
		metrics:        m,
		logger:         logger,
	}
}
