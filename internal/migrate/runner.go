// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package migrate drives batch conversion of source documents: it discovers
// .sql and .m files under an input directory, routes each through the right
// converter, and persists the converted SQL with provenance commentary. The
// conversion engine itself never touches the filesystem; all I/O lives here.
// Input and output directories may be local paths or Unity Catalog volume
// paths, transferred through a VolumeStore.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/dacolabs/sqlbridge/internal/convert/powerm"
	"github.com/dacolabs/sqlbridge/internal/convert/tsql"
	"github.com/dacolabs/sqlbridge/internal/databricks"
)

// ErrNoVolumeStore indicates a /Volumes/... path was given without a
// Databricks connection to serve it.
var ErrNoVolumeStore = errors.New("Unity Catalog volume paths require a Databricks connection")

// VolumeStore lists and transfers files on Unity Catalog volumes.
// *databricks.Client implements it.
type VolumeStore interface {
	ListFiles(ctx context.Context, dir string) ([]string, error)
	ReadFile(ctx context.Context, path string) (string, error)
	WriteFile(ctx context.Context, path, content string) error
	CreateDirectory(ctx context.Context, dir string) error
}

// Options configures a batch run.
type Options struct {
	InputDir  string
	OutputDir string
	Target    convert.Target

	// Volumes serves /Volumes/... paths; nil restricts the run to local
	// directories.
	Volumes VolumeStore

	// Now supplies conversion timestamps; defaults to time.Now.
	Now func() time.Time
}

// FileResult is the outcome of converting one source file.
type FileResult struct {
	File      string
	Output    string
	Converter string
	Notes     []convert.Note
	Err       error
}

// Status returns "success" or "error" for report rendering.
func (r FileResult) Status() string {
	if r.Err != nil {
		return "error"
	}
	return "success"
}

// Runner converts every supported file under an input directory.
type Runner struct {
	opts   Options
	tsql   *tsql.Converter
	powerm *powerm.Converter
}

// NewRunner returns a runner with converters bound to the target.
func NewRunner(opts Options) *Runner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{
		opts:   opts,
		tsql:   tsql.New(opts.Target),
		powerm: powerm.New(opts.Target),
	}
}

// Run converts all .sql and .m files under the input directory. Individual
// file failures are recorded in their FileResult and never abort the batch;
// the returned error covers discovery and output-directory failures only.
func (r *Runner) Run(ctx context.Context) ([]FileResult, error) {
	files, err := r.discover(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.ensureOutputDir(ctx); err != nil {
		return nil, err
	}

	results := make([]FileResult, 0, len(files))
	for _, p := range files {
		results = append(results, r.convertFile(ctx, p))
	}
	return results, nil
}

func (r *Runner) volumes() (VolumeStore, error) {
	if r.opts.Volumes == nil {
		return nil, ErrNoVolumeStore
	}
	return r.opts.Volumes, nil
}

func isSourceFile(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".sql", ".m":
		return true
	}
	return false
}

func (r *Runner) discover(ctx context.Context) ([]string, error) {
	if databricks.IsVolumePath(r.opts.InputDir) {
		store, err := r.volumes()
		if err != nil {
			return nil, err
		}
		all, err := store.ListFiles(ctx, r.opts.InputDir)
		if err != nil {
			return nil, err
		}
		var files []string
		for _, p := range all {
			if isSourceFile(p) {
				files = append(files, p)
			}
		}
		sort.Strings(files)
		return files, nil
	}

	var files []string
	err := filepath.WalkDir(r.opts.InputDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isSourceFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func (r *Runner) ensureOutputDir(ctx context.Context) error {
	if databricks.IsVolumePath(r.opts.OutputDir) {
		store, err := r.volumes()
		if err != nil {
			return err
		}
		return store.CreateDirectory(ctx, r.opts.OutputDir)
	}
	if err := os.MkdirAll(r.opts.OutputDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

func (r *Runner) readFile(ctx context.Context, p string) (string, error) {
	if databricks.IsVolumePath(p) {
		store, err := r.volumes()
		if err != nil {
			return "", err
		}
		return store.ReadFile(ctx, p)
	}
	data, err := os.ReadFile(p) //nolint:gosec // path comes from directory walk
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Runner) writeFile(ctx context.Context, p, content string) error {
	if databricks.IsVolumePath(p) {
		store, err := r.volumes()
		if err != nil {
			return err
		}
		return store.WriteFile(ctx, p, content)
	}
	return os.WriteFile(p, []byte(content), 0o600)
}

func (r *Runner) outputPath(name string) string {
	if databricks.IsVolumePath(r.opts.OutputDir) {
		return path.Join(r.opts.OutputDir, name)
	}
	return filepath.Join(r.opts.OutputDir, name)
}

func (r *Runner) convertFile(ctx context.Context, p string) FileResult {
	name := filepath.Base(p)

	content, err := r.readFile(ctx, p)
	if err != nil {
		return FileResult{File: name, Err: err}
	}

	dialect := convert.Classify(p, content)

	var (
		res           convert.Result
		converterName string
	)
	switch dialect {
	case convert.DialectPowerM:
		res = r.powerm.ConvertScript(content)
		converterName = "Power M Query"
	case convert.DialectTSQLDDL:
		res = r.tsql.ConvertDDL(content)
		converterName = "T-SQL / Fabric"
	default:
		res = r.tsql.ConvertQuery(content)
		converterName = "T-SQL / Fabric"
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	outPath := r.outputPath(stem + "_databricks.sql")

	output := renderOutput(name, converterName, content, res.SQL, r.opts.Now())
	if err := r.writeFile(ctx, outPath, output); err != nil {
		return FileResult{File: name, Converter: converterName, Err: err}
	}

	return FileResult{
		File:      name,
		Output:    outPath,
		Converter: converterName,
		Notes:     res.Notes,
	}
}

// renderOutput wraps converted SQL with provenance commentary: the source
// file, the converter used, the conversion timestamp, and the original text
// embedded as a block comment.
func renderOutput(srcName, converterName, original, converted string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- Converted from: %s\n", srcName)
	fmt.Fprintf(&b, "-- Converter: %s\n", converterName)
	fmt.Fprintf(&b, "-- Conversion Date: %s\n", now.Format(time.RFC3339))
	b.WriteString("-- Original SQL:\n/*\n")
	b.WriteString(original)
	b.WriteString("\n*/\n\n-- Databricks SQL:\n")
	b.WriteString(converted)
	b.WriteString("\n")
	return b.String()
}

// ExtractSQL strips the provenance commentary from a converted output file,
// returning only the executable statement lines. Block comments written by
// renderOutput and -- line comments are dropped.
func ExtractSQL(content string) string {
	var sqlLines []string
	inBlock := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case inBlock:
			if strings.HasSuffix(trimmed, "*/") {
				inBlock = false
			}
		case strings.HasPrefix(trimmed, "/*"):
			if !strings.HasSuffix(trimmed, "*/") || trimmed == "/*" {
				inBlock = true
			}
		case strings.HasPrefix(trimmed, "--"), trimmed == "":
		default:
			sqlLines = append(sqlLines, line)
		}
	}
	return strings.Join(sqlLines, "\n")
}
