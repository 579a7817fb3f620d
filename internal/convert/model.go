// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect identifies the source dialect of a document.
type Dialect string

const (
	// DialectTSQLQuery is a freeform T-SQL (or Fabric Datamart) query.
	DialectTSQLQuery Dialect = "tsql-query"
	// DialectTSQLDDL is a T-SQL (or Fabric Datamart) CREATE TABLE statement.
	DialectTSQLDDL Dialect = "tsql-ddl"
	// DialectPowerM is a Power Query M script.
	DialectPowerM Dialect = "power-m"
)

// Document is one immutable source document to convert.
type Document struct {
	Text    string
	Dialect Dialect
}

// Target is the optional Unity Catalog destination for converted tables.
// Table references are qualified only when both fields are set.
type Target struct {
	Catalog string
	Schema  string
}

// Configured reports whether both catalog and schema are set.
func (t Target) Configured() bool {
	return t.Catalog != "" && t.Schema != ""
}

// Qualify prefixes a bare table name with catalog and schema when both
// are configured, otherwise returns the name unchanged.
func (t Target) Qualify(table string) string {
	if !t.Configured() {
		return table
	}
	return t.Catalog + "." + t.Schema + "." + table
}

// Note is one conversion log entry describing a single transformation
// decision. Warnings signal reduced translation confidence, not failure.
type Note struct {
	Message string
	Warning bool
}

func (n Note) String() string {
	if n.Warning {
		return "WARNING: " + n.Message
	}
	return n.Message
}

// Result pairs converted SQL text with the ordered notes accumulated while
// producing it. Note order reflects the sequence in which transformation
// stages ran, not position in the text.
type Result struct {
	SQL   string
	Notes []Note
}

// Log accumulates notes during a single conversion call. Each call builds
// its own Log, so results never share state across calls or goroutines.
type Log struct {
	notes []Note
}

// Add appends a note.
func (l *Log) Add(format string, args ...any) {
	l.notes = append(l.notes, Note{Message: fmt.Sprintf(format, args...)})
}

// Warn appends a warning note.
func (l *Log) Warn(format string, args ...any) {
	l.notes = append(l.notes, Note{Message: fmt.Sprintf(format, args...), Warning: true})
}

// Notes returns the accumulated notes in order.
func (l *Log) Notes() []Note {
	return l.notes
}

// Classify determines the dialect of a source file from its path and
// contents: .m files are Power Query M, SQL text containing CREATE TABLE is
// DDL, anything else is a query. This mirrors how source documents are
// routed before conversion; it performs no validation.
func Classify(path, text string) Dialect {
	if strings.EqualFold(filepath.Ext(path), ".m") {
		return DialectPowerM
	}
	if strings.Contains(strings.ToUpper(text), "CREATE TABLE") {
		return DialectTSQLDDL
	}
	return DialectTSQLQuery
}
