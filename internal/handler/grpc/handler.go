// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1 service so orchestrators
// can probe the node.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/vera-node/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name of the voting engine. The empty
// name reports the overall server status.
const ServiceName = "vera.node.v1.VeraNode"

// Pinger reports whether the storage behind the node answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns the health server. Both service names start SERVING; Probe flips
// them to NOT_SERVING while storage is unreachable, and Shutdown turns them
// NOT_SERVING for good.
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: hs,
		pinger: pinger,
		logger: logger,
	}
}

// Register installs the health service on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe pings storage every interval until ctx is done and mirrors the
// result into the serving status.
func (h *Handler) Probe(ctx context.Context, interval time.Duration) {
	if h.pinger == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	serving := true
	for {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}

		pingCtx, cancel := context.WithTimeout(ctx, interval)
		err := h.pinger.Ping(pingCtx)
		cancel()

		switch {
		case err != nil && serving:
			serving = false
			h.logger.Err(err).Str("func", "*Handler.Probe").Msg("storage unreachable, reporting NOT_SERVING")
			h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		case err == nil && !serving:
			serving = true
			h.logger.Info().Msg("storage reachable again, reporting SERVING")
			h.setStatus(healthpb.HealthCheckResponse_SERVING)
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
