// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	commaRe      = regexp.MustCompile(`\s*,\s*`)
	openParenRe  = regexp.MustCompile(`\s*\(\s*`)
	closeParenRe = regexp.MustCompile(`\s*\)\s*`)
)

// cleanFormat normalizes query formatting: strips Power Query #(lf) line
// feed artifacts, collapses whitespace runs, and normalizes comma and
// paren spacing.
func cleanFormat(sql string) string {
	s := strings.ReplaceAll(sql, "#(lf)", "\n")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = commaRe.ReplaceAllString(s, ", ")
	s = openParenRe.ReplaceAllString(s, "(")
	s = closeParenRe.ReplaceAllString(s, ") ")
	return strings.TrimSpace(s)
}
