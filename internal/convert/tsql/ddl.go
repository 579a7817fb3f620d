// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"regexp"
	"strings"

	"github.com/dacolabs/sqlbridge/internal/convert"
)

var (
	defaultNewIDRe   = regexp.MustCompile(`(?i)DEFAULT\s+NEWID\(\)`)
	defaultGetDateRe = regexp.MustCompile(`(?i)DEFAULT\s+GETDATE\(\)`)

	createTableRe = regexp.MustCompile(`(?i)CREATE\s+TABLE`)
)

// convertDefaultValues rewrites T-SQL DEFAULT expressions to their
// Databricks equivalents. Scoped to the DEFAULT keyword so the same
// functions used elsewhere in the statement are untouched.
func convertDefaultValues(ddl string, log *convert.Log) string {
	converted := ddl

	if defaultNewIDRe.MatchString(converted) {
		converted = defaultNewIDRe.ReplaceAllString(converted, "DEFAULT UUID()")
		log.Add("Converted DEFAULT NEWID() to DEFAULT UUID()")
	}

	if defaultGetDateRe.MatchString(converted) {
		converted = defaultGetDateRe.ReplaceAllString(converted, "DEFAULT CURRENT_TIMESTAMP()")
		log.Add("Converted DEFAULT GETDATE() to DEFAULT CURRENT_TIMESTAMP()")
	}

	return converted
}

// addDeltaClause appends USING DELTA after the column-definition list of a
// CREATE TABLE statement that has no storage clause yet. The insertion
// point is found by tracking paren depth from the column list's opening
// paren, so trailing parenthesized clauses never cause misplacement.
// Idempotent: already-augmented text passes through unchanged.
func addDeltaClause(ddl string, log *convert.Log) string {
	upper := strings.ToUpper(ddl)
	if !strings.Contains(upper, "CREATE TABLE") || strings.Contains(upper, "USING DELTA") {
		return ddl
	}

	end := columnListEnd(ddl)
	if end < 0 {
		return ddl
	}

	log.Add("Added USING DELTA clause for Delta Lake table format")
	return ddl[:end+1] + " USING DELTA" + ddl[end+1:]
}

// columnListEnd returns the index of the closing paren of the CREATE TABLE
// column list, or -1 if the statement has no balanced column list.
func columnListEnd(ddl string) int {
	loc := createTableRe.FindStringIndex(ddl)
	if loc == nil {
		return -1
	}

	depth := 0
	for i := loc[1]; i < len(ddl); i++ {
		switch ddl[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
