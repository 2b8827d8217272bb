// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command server runs a vera-node: the REST API, the live event feed, the
// gRPC health endpoint and the lifecycle workers.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/vera-node/internal/adapter"
	"github.com/MKhiriev/vera-node/internal/config"
	"github.com/MKhiriev/vera-node/internal/handler"
	"github.com/MKhiriev/vera-node/internal/handler/ws"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/server"
	"github.com/MKhiriev/vera-node/internal/service"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/internal/workers"
	"github.com/MKhiriev/vera-node/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	log := logger.NewLogger("vera-server")
	if err := run(info, log); err != nil {
		log.Err(err).Msg("server exited")
		os.Exit(1)
	}
}

func run(info models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}
	if cfg.App.Version == "N/A" {
		cfg.App.Version = info.BuildVersion()
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	validator, err := adapter.NewAIValidator(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating AI validator: %w", err)
	}

	m := metrics.New()
	hub := ws.NewHub(m, log)

	services, err := service.NewServices(storages, validator, cfg, m, hub, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, hub, storages, m, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	var bg []server.Worker
	for _, w := range workers.NewWorkers(services.FinalizationService, cfg.Workers, log) {
		bg = append(bg, w)
	}

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
