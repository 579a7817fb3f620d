// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"regexp"

	"github.com/dacolabs/sqlbridge/internal/convert"
)

// dateRule rewrites one T-SQL date-arithmetic idiom. Rules are tried in
// order and independently; several may fire within one document.
type dateRule struct {
	name string
	re   *regexp.Regexp
	repl string
}

// castCurrentDateRe collapses CAST(GETDATE() AS DATE) to CURRENT_DATE().
// It must run before the generic CAST rule and before the standalone
// GETDATE replacement, otherwise the cast form is rewritten into a
// DATE(CURRENT_TIMESTAMP()) expression instead.
var castCurrentDateRe = regexp.MustCompile(`(?i)CAST\s*\(\s*GETDATE\(\)\s+AS\s+DATE\s*\)`)

var dateRules = []dateRule{
	{
		name: "DATEADD(day, n, GETDATE()) -> DATE_ADD(CURRENT_DATE(), n)",
		re:   regexp.MustCompile(`(?i)DATEADD\s*\(\s*day\s*,\s*(-?\d+)\s*,\s*GETDATE\(\)\s*\)`),
		repl: "DATE_ADD(CURRENT_DATE(), ${1})",
	},
	{
		name: "DATEADD(month, n, GETDATE()) -> ADD_MONTHS(CURRENT_DATE(), n)",
		re:   regexp.MustCompile(`(?i)DATEADD\s*\(\s*month\s*,\s*(-?\d+)\s*,\s*GETDATE\(\)\s*\)`),
		repl: "ADD_MONTHS(CURRENT_DATE(), ${1})",
	},
	{
		name: "DATEADD(year, n, GETDATE()) -> ADD_MONTHS(CURRENT_DATE(), n * 12)",
		re:   regexp.MustCompile(`(?i)DATEADD\s*\(\s*year\s*,\s*(-?\d+)\s*,\s*GETDATE\(\)\s*\)`),
		repl: "ADD_MONTHS(CURRENT_DATE(), ${1} * 12)",
	},
	{
		name: "DATEADD(day, n, expr) -> DATE_ADD(expr, n)",
		re:   regexp.MustCompile(`(?i)DATEADD\s*\(\s*day\s*,\s*(-?\d+)\s*,\s*([^\)]+)\s*\)`),
		repl: "DATE_ADD(${2}, ${1})",
	},
	{
		name: "DATEDIFF(day, a, b) -> DATEDIFF(b, a)",
		re:   regexp.MustCompile(`(?i)DATEDIFF\s*\(\s*day\s*,\s*([^,]+)\s*,\s*([^\)]+)\s*\)`),
		repl: "DATEDIFF(${2}, ${1})",
	},
	{
		name: "CAST(expr AS DATE) -> DATE(expr)",
		re:   regexp.MustCompile(`(?i)CAST\s*\(\s*([^\s]+)\s+AS\s+DATE\s*\)`),
		repl: "DATE(${1})",
	},
}

// currentTimestampRules are the standalone builtin replacements applied
// after the idiom rules.
var currentTimestampRules = []dateRule{
	{
		name: "GETDATE() -> CURRENT_TIMESTAMP()",
		re:   regexp.MustCompile(`(?i)\bGETDATE\(\)`),
		repl: "CURRENT_TIMESTAMP()",
	},
	{
		name: "GETUTCDATE() -> CURRENT_TIMESTAMP()",
		re:   regexp.MustCompile(`(?i)\bGETUTCDATE\(\)`),
		repl: "CURRENT_TIMESTAMP()",
	},
	{
		name: "SYSDATETIME() -> CURRENT_TIMESTAMP()",
		re:   regexp.MustCompile(`(?i)\bSYSDATETIME\(\)`),
		repl: "CURRENT_TIMESTAMP()",
	},
}

// convertDateFunctions translates T-SQL date idioms to their Databricks
// equivalents, one note per rule that fires.
func convertDateFunctions(sql string, log *convert.Log) string {
	converted := sql

	if castCurrentDateRe.MatchString(converted) {
		converted = castCurrentDateRe.ReplaceAllString(converted, "CURRENT_DATE()")
		log.Add("Converted date function: CAST(GETDATE() AS DATE) -> CURRENT_DATE()")
	}

	for _, rule := range dateRules {
		if rule.re.MatchString(converted) {
			converted = rule.re.ReplaceAllString(converted, rule.repl)
			log.Add("Converted date function: %s", rule.name)
		}
	}

	for _, rule := range currentTimestampRules {
		if rule.re.MatchString(converted) {
			converted = rule.re.ReplaceAllString(converted, rule.repl)
			log.Add("Converted date function: %s", rule.name)
		}
	}

	return converted
}
