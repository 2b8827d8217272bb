// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	stdhttp "net/http"

	"github.com/MKhiriev/vera-node/internal/config"
	"github.com/MKhiriev/vera-node/internal/handler/grpc"
	"github.com/MKhiriev/vera-node/internal/handler/http"
	"github.com/MKhiriev/vera-node/internal/handler/ws"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler

	// Events is the hub behind /api/events; services publish into it.
	Events *ws.Hub
}

func NewHandlers(
	services *service.Services,
	events *ws.Hub,
	pinger grpc.Pinger,
	m *metrics.Metrics,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{Events: events}

	if cfg.HTTPAddress != "" {
		var feed stdhttp.Handler
		if events != nil {
			feed = events
		}
		handlers.HTTP = http.NewHandler(services, feed, m, cfg.RequestTimeout, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
