// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command ledger-audit copies the node's ledger into a SQLite file and
// verifies such a file offline.
//
//	ledger-audit export --dsn postgres://... --file audit.db
//	ledger-audit verify --file audit.db
//
// Reports go to stdout as JSON; logs go to stderr.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLoggerTo("ledger-audit", os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd(log).ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Err(err).Msg("ledger-audit failed")
		os.Exit(1)
	}
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "ledger-audit",
		Short:         "Export and verify the vera-node ledger",
		Version:       models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.SetLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(newExportCmd(log), newVerifyCmd(log))
	return root
}
