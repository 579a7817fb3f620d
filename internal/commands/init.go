// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/sqlbridge/internal/config"
	"github.com/dacolabs/sqlbridge/internal/prompts"
	"github.com/dacolabs/sqlbridge/internal/session"
	"github.com/spf13/cobra"
)

type initOptions struct {
	catalog        string
	schema         string
	profile        string
	warehouseID    string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a sqlbridge project",
		Long: `Initialize a sqlbridge project with a sqlbridge.yaml configuration file.
The config supplies default catalog/schema targets for convert and the
Databricks connection settings for validate.`,
		Example: `  # Interactive mode
  sqlbridge init

  # Non-interactive
  sqlbridge init --catalog main --schema sales --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "Default target Unity Catalog name")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "Default target schema name")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "Databricks config profile")
	cmd.Flags().StringVar(&opts.warehouseID, "warehouse-id", "", "SQL warehouse ID for validation")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("sqlbridge.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.catalog, &opts.schema, &opts.profile, &opts.warehouseID); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:     config.CurrentConfigVersion,
		Catalog:     opts.catalog,
		Schema:      opts.schema,
		Profile:     opts.profile,
		WarehouseID: opts.warehouseID,
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", session.ConfigFileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: configPath},
	}, "Project initialized")
	return nil
}
