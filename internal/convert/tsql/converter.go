// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package tsql converts T-SQL queries and CREATE TABLE statements to
// Databricks SQL. The conversion is a pure function of the input text and
// the static mapping tables; every call returns a fresh result with its
// own ordered note log.
package tsql

import (
	"fmt"

	"github.com/dacolabs/sqlbridge/internal/convert"
)

// Converter converts T-SQL documents to Databricks SQL.
type Converter struct {
	target convert.Target
}

// New returns a converter that qualifies table references with the given
// target when both catalog and schema are set.
func New(target convert.Target) *Converter {
	return &Converter{target: target}
}

// Name returns the converter's registry identifier.
func (c *Converter) Name() string {
	return "tsql"
}

// Convert dispatches on the document dialect.
func (c *Converter) Convert(doc convert.Document) (convert.Result, error) {
	switch doc.Dialect {
	case convert.DialectTSQLQuery:
		return c.ConvertQuery(doc.Text), nil
	case convert.DialectTSQLDDL:
		return c.ConvertDDL(doc.Text), nil
	default:
		return convert.Result{}, fmt.Errorf("tsql converter: unsupported dialect %q", doc.Dialect)
	}
}

// ConvertQuery converts a freeform T-SQL query.
func (c *Converter) ConvertQuery(query string) convert.Result {
	log := &convert.Log{}

	converted := normalizeIdentifiers(query, log)
	converted = convertDateFunctions(converted, log)
	converted = convertSystemFunctions(converted, log)
	converted = c.qualifyTableReferences(converted, log)
	converted = cleanFormat(converted)

	return convert.Result{SQL: converted, Notes: log.Notes()}
}

// ConvertDDL converts a T-SQL CREATE TABLE statement. Identifiers are
// normalized first so bracket noise does not break the type and constraint
// scanning that follows.
func (c *Converter) ConvertDDL(ddl string) convert.Result {
	log := &convert.Log{}

	converted := normalizeIdentifiers(ddl, log)
	converted = convertDataTypes(converted, log)
	converted = analyzeConstraints(converted, log)
	converted = convertDefaultValues(converted, log)
	converted = addDeltaClause(converted, log)

	return convert.Result{SQL: converted, Notes: log.Notes()}
}

// qualifyTableReferences is the named rule slot for rewriting bare table
// references to catalog.schema.table form. The substantive rewrite is
// unimplemented: qualifying bare names with textual matching alone mangles
// keywords, so the slot passes text through unchanged until a real
// reference scanner exists.
func (c *Converter) qualifyTableReferences(sql string, _ *convert.Log) string {
	return sql
}
