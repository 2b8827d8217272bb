// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/vera-node/internal/config"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/service"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const dsnEnv = "STORAGE_DB_DATABASE_URI"

var errNoDSN = errors.New("database DSN is required (--dsn or " + dsnEnv + ")")

type exportResult struct {
	File   string `json:"file"`
	Copied int64  `json:"copied"`
	Height int64  `json:"height"`
	Head   string `json:"headHash"`
}

func newExportCmd(log *logger.Logger) *cobra.Command {
	var dsn, file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Append the live chain to a SQLite audit file",
		Long: "Connects to the node database and appends every block the audit file " +
			"does not have yet. Blocks that do not extend the file's head are refused.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				_ = godotenv.Load()
				dsn = os.Getenv(dsnEnv)
			}
			if dsn == "" {
				return errNoDSN
			}

			storages, err := store.NewStorages(cmd.Context(), config.DB{DSN: dsn}, log)
			if err != nil {
				log.Err(err).Msg("error connecting to the node database")
				return err
			}
			defer storages.Close()

			ledgerService := service.NewLedgerService(storages.LedgerRepository, metrics.New(), log)
			return export(cmd.Context(), ledgerService, file, cmd.OutOrStdout(), log)
		},
	}
	cmd.Flags().StringVarP(&dsn, "dsn", "d", "", "PostgreSQL DSN of the node")
	cmd.Flags().StringVarP(&file, "file", "f", "ledger-audit.db", "SQLite audit file")
	return cmd
}

func export(ctx context.Context, ledgerService service.LedgerService, file string, out io.Writer, log *logger.Logger) error {
	archive, err := store.OpenLedgerArchive(ctx, file, log)
	if err != nil {
		return fmt.Errorf("opening %s: %w", file, err)
	}
	defer archive.Close()

	copied, err := ledgerService.Export(ctx, archive)
	if err != nil {
		log.Err(err).Int64("copied", copied).Msg("export stopped")
		return err
	}

	head, err := archive.Head(ctx)
	if err != nil {
		return err
	}

	log.Info().Int64("copied", copied).Int64("height", head.Height).Msg("export finished")
	return writeJSON(out, exportResult{File: file, Copied: copied, Height: head.Height, Head: head.Hash})
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
