// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dacolabs/sqlbridge/internal/cmdctx"
	"github.com/dacolabs/sqlbridge/internal/databricks"
	"github.com/dacolabs/sqlbridge/internal/migrate"
	"github.com/dacolabs/sqlbridge/internal/prompts"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type validateOptions struct {
	input       string
	profile     string
	warehouseID string
	execute     bool
	report      bool
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate converted SQL files against a Databricks SQL warehouse",
		Long: `Validate converted SQL files against a live Databricks SQL warehouse.

By default every statement is checked with EXPLAIN. With --execute, SELECT
statements are run instead. A per-file pass/fail outcome is reported;
individual failures never abort the batch.`,
		Example: `  # Syntax-check all converted files
  sqlbridge validate --input ./converted --warehouse-id abc123

  # Execute SELECT statements
  sqlbridge validate --input ./converted --warehouse-id abc123 --execute

  # Record the outcomes in migration_report.md
  sqlbridge validate --input ./converted --warehouse-id abc123 --report`,
		PersistentPreRunE: cmdctx.PreRunLoadOptional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Directory containing converted .sql files")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "Databricks config profile")
	cmd.Flags().StringVar(&opts.warehouseID, "warehouse-id", "", "SQL warehouse ID")
	cmd.Flags().BoolVar(&opts.execute, "execute", false, "Execute SELECT statements instead of EXPLAIN validation")
	cmd.Flags().BoolVar(&opts.report, "report", false, "Record the outcomes in the migration report")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *validateOptions) error {
	if ctx := cmdctx.FromCommand(cmd); ctx != nil {
		if opts.profile == "" {
			opts.profile = ctx.Config.Profile
		}
		if opts.warehouseID == "" {
			opts.warehouseID = ctx.Config.WarehouseID
		}
	}

	if opts.input == "" {
		return fmt.Errorf("--input is required")
	}

	client, err := databricks.New(opts.profile, opts.warehouseID)
	if err != nil {
		return err
	}
	if err := client.TestConnection(cmd.Context()); err != nil {
		return err
	}
	info, err := client.WarehouseInfo(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Warehouse: %s (%s, %s)\n\n", info.Name, info.State, info.Size)

	files, err := listSQLFiles(opts.input)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .sql files found in %s", opts.input)
	}

	results := make([]migrate.TestResult, 0, len(files))
	for _, path := range files {
		results = append(results, validateFile(cmd, client, opts, path))
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.SetTitle("Validation Results")
	t.AppendHeader(table.Row{"File", "Status", "Message"})
	for _, r := range results {
		t.AppendRow(table.Row{r.File, r.Status, r.Message})
	}
	t.Render()

	if opts.report {
		path, err := migrate.AppendTestResults(opts.input, results, time.Now())
		if err != nil {
			return err
		}
		prompts.PrintResult([]prompts.ResultField{
			{Label: "Report", Value: path},
		}, "Validation results recorded")
	}

	return nil
}

func validateFile(cmd *cobra.Command, client *databricks.Client, opts *validateOptions, path string) migrate.TestResult {
	name := filepath.Base(path)

	data, err := os.ReadFile(path) //nolint:gosec // path comes from directory walk
	if err != nil {
		return migrate.TestResult{File: name, Status: "error", Message: err.Error()}
	}

	sql := migrate.ExtractSQL(string(data))
	if sql == "" {
		return migrate.TestResult{File: name, Status: "skipped", Message: "no statement found"}
	}

	if opts.execute {
		if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(sql)), "SELECT") {
			return migrate.TestResult{File: name, Status: "skipped", Message: "only SELECT statements are executed"}
		}
		if err := client.Execute(cmd.Context(), sql); err != nil {
			return migrate.TestResult{File: name, Status: "failed", Message: err.Error()}
		}
		return migrate.TestResult{File: name, Status: "passed"}
	}

	validation, err := client.Validate(cmd.Context(), sql)
	if err != nil {
		return migrate.TestResult{File: name, Status: "error", Message: err.Error()}
	}
	if !validation.Valid {
		return migrate.TestResult{File: name, Status: "invalid", Message: validation.Message}
	}
	return migrate.TestResult{File: name, Status: "validated"}
}

func listSQLFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".sql") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
