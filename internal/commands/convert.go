// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dacolabs/sqlbridge/internal/cmdctx"
	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/dacolabs/sqlbridge/internal/databricks"
	"github.com/dacolabs/sqlbridge/internal/migrate"
	"github.com/dacolabs/sqlbridge/internal/prompts"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	input          string
	output         string
	catalog        string
	schema         string
	profile        string
	report         bool
	nonInteractive bool
}

func newConvertCmd(converters convert.Register) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert source SQL and Power Query M files to Databricks SQL",
		Long: fmt.Sprintf(`Convert all .sql and .m files under an input directory to Databricks SQL.

T-SQL files containing CREATE TABLE are converted as DDL, other .sql files
as queries, and .m files through the Power Query M extractor.

Input and output directories may be local paths or Unity Catalog volume
paths (/Volumes/<catalog>/<schema>/<volume>/...).

Registered converters: %s`, strings.Join(converters.Available(), ", ")),
		Example: `  # Interactive mode
  sqlbridge convert

  # Non-interactive
  sqlbridge convert --input ./queries --output ./converted --catalog main --schema sales

  # Unity Catalog volumes
  sqlbridge convert --input /Volumes/main/raw/queries --output /Volumes/main/raw/converted

  # Also write the markdown migration report
  sqlbridge convert --input ./queries --output ./converted --report`,
		PersistentPreRunE: cmdctx.PreRunLoadOptional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Directory containing source files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Directory for converted files")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "Target Unity Catalog name")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "Target schema name")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "Databricks config profile (for volume paths)")
	cmd.Flags().BoolVar(&opts.report, "report", false, "Write migration_report.md to the output directory")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --input and --output)")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *convertOptions) error {
	// Project config supplies defaults for anything not set via flags.
	if ctx := cmdctx.FromCommand(cmd); ctx != nil {
		if opts.catalog == "" {
			opts.catalog = ctx.Config.Catalog
		}
		if opts.schema == "" {
			opts.schema = ctx.Config.Schema
		}
		if opts.profile == "" {
			opts.profile = ctx.Config.Profile
		}
	}

	if opts.nonInteractive {
		if opts.input == "" || opts.output == "" {
			return fmt.Errorf("non-interactive mode requires --input and --output")
		}
	} else {
		if err := prompts.RunConvertForm(&opts.input, &opts.output, &opts.catalog, &opts.schema); err != nil {
			return err
		}
	}

	if !databricks.IsVolumePath(opts.input) {
		if _, err := os.Stat(opts.input); err != nil {
			return fmt.Errorf("input directory not found: %s", opts.input)
		}
	}

	migrateOpts := migrate.Options{
		InputDir:  opts.input,
		OutputDir: opts.output,
		Target:    convert.Target{Catalog: opts.catalog, Schema: opts.schema},
	}

	if databricks.IsVolumePath(opts.input) || databricks.IsVolumePath(opts.output) {
		ws, err := databricks.NewWorkspace(opts.profile)
		if err != nil {
			return err
		}
		migrateOpts.Volumes = ws
	}

	runner := migrate.NewRunner(migrateOpts)
	results, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	migrate.WriteSummary(cmd.OutOrStdout(), results)

	fields := []prompts.ResultField{
		{Label: "Files converted", Value: fmt.Sprintf("%d", len(results))},
		{Label: "Output directory", Value: opts.output},
	}

	if opts.report {
		reportPath, err := migrate.WriteReport(cmd.Context(), migrateOpts, results, nil, time.Now())
		if err != nil {
			return err
		}
		fields = append(fields, prompts.ResultField{Label: "Report", Value: reportPath})
	}

	prompts.PrintResult(fields, "Conversion complete")

	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("some files failed to convert; see the summary above")
		}
	}
	return nil
}
