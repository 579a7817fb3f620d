// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package migrate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dacolabs/sqlbridge/internal/databricks"
)

// ReportFileName is the migration report written to the output directory.
const ReportFileName = "migration_report.md"

// TestResult is the outcome of validating or executing one converted file
// against a warehouse.
type TestResult struct {
	File    string
	Status  string
	Message string
}

// Report renders the migration report in markdown.
func Report(opts Options, results []FileResult, tests []TestResult, now time.Time) string {
	var b strings.Builder

	b.WriteString("# SQL Migration Report\n\n")
	fmt.Fprintf(&b, "**Date:** %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Source Directory:** %s\n\n", opts.InputDir)
	fmt.Fprintf(&b, "**Target Catalog:** %s\n\n", opts.Target.Catalog)
	fmt.Fprintf(&b, "**Target Schema:** %s\n\n", opts.Target.Schema)

	successful := 0
	for _, r := range results {
		if r.Err == nil {
			successful++
		}
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Total Files:** %d\n", len(results))
	fmt.Fprintf(&b, "- **Successful:** %d\n", successful)
	fmt.Fprintf(&b, "- **Failed:** %d\n\n", len(results)-successful)

	b.WriteString("## Conversion Details\n\n")
	for _, r := range results {
		fmt.Fprintf(&b, "### %s\n\n", r.File)
		fmt.Fprintf(&b, "- **Status:** %s\n", r.Status())
		fmt.Fprintf(&b, "- **Converter:** %s\n", valueOr(r.Converter, "N/A"))

		if len(r.Notes) > 0 {
			b.WriteString("\n**Conversion Notes:**\n\n")
			for _, note := range r.Notes {
				fmt.Fprintf(&b, "- %s\n", note)
			}
		}

		if r.Err != nil {
			fmt.Fprintf(&b, "\n**Error:** %v\n", r.Err)
		}

		b.WriteString("\n---\n\n")
	}

	if len(tests) > 0 {
		b.WriteString(testResultsSection(tests))
	}

	return b.String()
}

func testResultsSection(tests []TestResult) string {
	var b strings.Builder
	b.WriteString("## Test Results\n\n")
	for _, tr := range tests {
		fmt.Fprintf(&b, "### %s\n\n", tr.File)
		fmt.Fprintf(&b, "- **Status:** %s\n", tr.Status)
		if tr.Message != "" {
			fmt.Fprintf(&b, "- **Message:** %s\n", tr.Message)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteReport writes the markdown report to migration_report.md in the
// output directory and returns its path. A volume output directory is
// written through the configured VolumeStore.
func WriteReport(ctx context.Context, opts Options, results []FileResult, tests []TestResult, now time.Time) (string, error) {
	content := Report(opts, results, tests, now)

	if databricks.IsVolumePath(opts.OutputDir) {
		if opts.Volumes == nil {
			return "", ErrNoVolumeStore
		}
		p := path.Join(opts.OutputDir, ReportFileName)
		if err := opts.Volumes.WriteFile(ctx, p, content); err != nil {
			return "", fmt.Errorf("failed to write report: %w", err)
		}
		return p, nil
	}

	p := filepath.Join(opts.OutputDir, ReportFileName)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return p, nil
}

// AppendTestResults records validation outcomes in the migration report
// under dir, replacing any previous Test Results section. When no report
// exists yet a minimal one is created, so validation of files converted
// without --report still leaves a record.
func AppendTestResults(dir string, tests []TestResult, now time.Time) (string, error) {
	p := filepath.Join(dir, ReportFileName)

	var content string
	data, err := os.ReadFile(p) //nolint:gosec // path is provided by caller
	switch {
	case err == nil:
		content = string(data)
	case errors.Is(err, fs.ErrNotExist):
		content = fmt.Sprintf("# SQL Migration Report\n\n**Date:** %s\n\n", now.Format("2006-01-02 15:04:05"))
	default:
		return "", fmt.Errorf("failed to read report: %w", err)
	}

	if idx := strings.Index(content, "## Test Results"); idx >= 0 {
		content = content[:idx]
	}
	if !strings.HasSuffix(content, "\n\n") {
		content = strings.TrimRight(content, "\n") + "\n\n"
	}
	content += testResultsSection(tests)

	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return p, nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
