// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/vera-node/internal/config"
	"github.com/MKhiriev/vera-node/internal/handler"
	"github.com/MKhiriev/vera-node/internal/logger"
	"golang.org/x/sync/errgroup"
)

// probeInterval is how often the gRPC health status is refreshed from storage.
const probeInterval = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	handlers *handler.Handlers
	workers  []Worker

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers []Worker, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		handlers: handlers,
		workers:  workers,
		logger:   logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run blocks until ctx is cancelled or any transport or worker fails. Either
// way every other part is stopped before it returns.
func (s *server) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	// stop transports once ctx is done, whatever cancelled it
	g.Go(func() error {
		<-ctx.Done()
		s.Shutdown()
		return nil
	})

	if s.handlers.Events != nil {
		g.Go(func() error {
			s.handlers.Events.Run(ctx)
			return nil
		})
	}

	for _, w := range s.workers {
		g.Go(func() error {
			s.logger.Info().Str("worker", w.Name()).Msg("starting worker")
			if err := w.Run(ctx); err != nil {
				return fmt.Errorf("worker %s: %w", w.Name(), err)
			}
			return nil
		})
	}

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		g.Go(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		g.Go(func() error {
			go s.handlers.GRPC.Probe(ctx, probeInterval)
			return s.gRPCServer.RunServer()
		})
	}

	return g.Wait()
}
