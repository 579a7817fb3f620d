// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package powerm converts Power Query M scripts to Databricks SQL. It does
// not rewrite M syntax in place; it extracts the structural facts of the
// script (source system, target table, projected columns, date filter,
// sort order) and synthesizes a fresh CREATE OR REPLACE TABLE statement
// from them. Complex M scripts may require manual review.
package powerm

import (
	"fmt"
	"strings"

	"github.com/dacolabs/sqlbridge/internal/convert"
)

// Converter converts Power Query M documents.
type Converter struct {
	target convert.Target
}

// New returns a Power M converter for the given target.
func New(target convert.Target) *Converter {
	return &Converter{target: target}
}

// Name returns the converter's registry identifier.
func (c *Converter) Name() string {
	return "power-m"
}

// Convert converts one Power Query M document.
func (c *Converter) Convert(doc convert.Document) (convert.Result, error) {
	if doc.Dialect != convert.DialectPowerM {
		return convert.Result{}, fmt.Errorf("power-m converter: unsupported dialect %q", doc.Dialect)
	}
	return c.ConvertScript(doc.Text), nil
}

// ConvertScript extracts the script's structural facts and synthesizes the
// Databricks SQL statement. Each extraction step and the final synthesis
// emit exactly one note.
func (c *Converter) ConvertScript(script string) convert.Result {
	log := &convert.Log{}

	source := extractSource(script, log)
	table := extractTableName(script, log)
	columns := extractSelectedColumns(script, log)
	filter := extractDateFilter(script, log)
	sort := extractSortOrder(script, log)

	sql := c.buildQuery(source, table, columns, filter, sort)
	log.Add("Generated Databricks SQL CREATE TABLE statement")

	return convert.Result{SQL: sql, Notes: log.Notes()}
}

// buildQuery assembles the CREATE OR REPLACE TABLE statement. The FROM
// clause target is catalog/schema-qualified only when both are configured.
func (c *Converter) buildQuery(source sourceInfo, table string, columns []string, filter, sort string) string {
	columnsSQL := "*"
	if len(columns) > 0 && columns[0] != "*" {
		columnsSQL = strings.Join(columns, ",\n  ")
	}

	from := c.target.Qualify(table)

	var b strings.Builder
	fmt.Fprintf(&b, "-- Converted from Power Query M\n")
	fmt.Fprintf(&b, "-- Source: %s\n", source.kind)
	fmt.Fprintf(&b, "-- Target Table: %s\n\n", table)
	fmt.Fprintf(&b, "CREATE OR REPLACE TABLE %s AS\nSELECT\n  %s\nFROM %s", table, columnsSQL, from)
	if filter != "" {
		fmt.Fprintf(&b, "\nWHERE %s", filter)
	}
	if sort != "" {
		fmt.Fprintf(&b, "\nORDER BY %s", sort)
	}
	b.WriteString(";")

	return b.String()
}
