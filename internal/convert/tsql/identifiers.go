// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"regexp"
	"strings"

	"github.com/dacolabs/sqlbridge/internal/convert"
)

// bracketRe matches [identifier] tokens, including [schema].[table] parts.
// Empty brackets are left alone.
var bracketRe = regexp.MustCompile(`\[([^\]]+)\]`)

// backtickChars are the characters that force backtick quoting in
// Databricks SQL identifiers, on top of any whitespace.
const backtickChars = " \t-/\\"

// normalizeIdentifiers rewrites SQL Server bracket identifiers. Identifiers
// containing whitespace or -, /, \ become backtick-quoted; all others have
// their brackets stripped. The rewrite is context-free: bracket tokens
// inside string literals are rewritten too (known limitation).
func normalizeIdentifiers(sql string, log *convert.Log) string {
	return bracketRe.ReplaceAllStringFunc(sql, func(m string) string {
		ident := m[1 : len(m)-1]
		if strings.ContainsAny(ident, backtickChars) {
			log.Add("Converted bracketed identifier [%s] to backticks", ident)
			return "`" + ident + "`"
		}
		log.Add("Removed unnecessary brackets from [%s]", ident)
		return ident
	})
}
