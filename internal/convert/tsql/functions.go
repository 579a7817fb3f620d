// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"regexp"
	"strings"

	"github.com/dacolabs/sqlbridge/internal/convert"
)

// functionMapping is a whole-token replacement of one T-SQL scalar or
// system function. Matching is case-insensitive and word-bounded so
// partial identifiers (e.g. LEN inside LENGTH) are never touched.
type functionMapping struct {
	source string
	target string
	re     *regexp.Regexp
}

// functionMappings is ordered so conversion logs are deterministic.
var functionMappings = []functionMapping{
	{source: "GETDATE()", target: "CURRENT_TIMESTAMP()"},
	{source: "GETUTCDATE()", target: "CURRENT_TIMESTAMP()"},
	{source: "SYSDATETIME()", target: "CURRENT_TIMESTAMP()"},
	{source: "NEWID()", target: "UUID()"},
	{source: "ISNULL", target: "COALESCE"},
	{source: "LEN", target: "LENGTH"},
	{source: "CHARINDEX", target: "INSTR"},
	{source: "STUFF", target: "OVERLAY"},
	{source: "DATEPART", target: "EXTRACT"},
}

func init() {
	for i := range functionMappings {
		m := &functionMappings[i]
		if name, ok := strings.CutSuffix(m.source, "()"); ok {
			m.re = regexp.MustCompile(`(?i)\b` + name + `\s*\(\s*\)`)
		} else {
			m.re = regexp.MustCompile(`(?i)\b` + m.source + `\b`)
		}
	}
}

// currentTimestampBareRe matches the keyword form CURRENT_TIMESTAMP when it
// is not already a call. The optional paren group lets the replacement skip
// occurrences that already carry argument parens.
var currentTimestampBareRe = regexp.MustCompile(`(?i)\bCURRENT_TIMESTAMP(\(\))?`)

// convertSystemFunctions applies the static function table, one note per
// distinct mapping that fired.
func convertSystemFunctions(sql string, log *convert.Log) string {
	converted := sql

	for _, m := range functionMappings {
		if m.re.MatchString(converted) {
			converted = m.re.ReplaceAllString(converted, m.target)
			log.Add("Converted function: %s -> %s", m.source, m.target)
		}
	}

	// CURRENT_TIMESTAMP is valid without parens in T-SQL but Databricks
	// expects the call form.
	bare := false
	converted = currentTimestampBareRe.ReplaceAllStringFunc(converted, func(m string) string {
		if strings.HasSuffix(m, "()") {
			return m
		}
		bare = true
		return "CURRENT_TIMESTAMP()"
	})
	if bare {
		log.Add("Converted function: CURRENT_TIMESTAMP -> CURRENT_TIMESTAMP()")
	}

	return converted
}
