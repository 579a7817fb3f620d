// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"regexp"
	"strings"

	"github.com/dacolabs/sqlbridge/internal/convert"
)

// typeMappings maps a SQL Server base type name to its Databricks SQL
// equivalent. Lookup only; iteration order never matters here.
var typeMappings = map[string]string{
	// Exact numerics
	"BIGINT":     "BIGINT",
	"INT":        "INT",
	"SMALLINT":   "SMALLINT",
	"TINYINT":    "TINYINT",
	"BIT":        "BOOLEAN",
	"DECIMAL":    "DECIMAL",
	"NUMERIC":    "DECIMAL",
	"MONEY":      "DECIMAL(19,4)",
	"SMALLMONEY": "DECIMAL(10,4)",

	// Approximate numerics
	"FLOAT": "DOUBLE",
	"REAL":  "FLOAT",

	// Date and time
	"DATE":           "DATE",
	"DATETIME":       "TIMESTAMP",
	"DATETIME2":      "TIMESTAMP",
	"SMALLDATETIME":  "TIMESTAMP",
	"TIME":           "STRING", // Databricks has no native TIME type
	"DATETIMEOFFSET": "TIMESTAMP",

	// Character strings
	"CHAR":     "STRING",
	"VARCHAR":  "STRING",
	"TEXT":     "STRING",
	"NCHAR":    "STRING",
	"NVARCHAR": "STRING",
	"NTEXT":    "STRING",

	// Binary
	"BINARY":    "BINARY",
	"VARBINARY": "BINARY",
	"IMAGE":     "BINARY",

	// Other
	"UNIQUEIDENTIFIER": "STRING",
	"XML":              "STRING",
	"JSON":             "STRING",
}

var typeTokenRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)\s*(\(.*\))?$`)

// MapType maps one SQL Server type token of the shape BASE or BASE(params)
// to its Databricks equivalent. DECIMAL-family targets keep their
// precision/scale parameters; STRING targets drop length parameters
// (Databricks strings are unbounded). The second return value is false for
// unrecognized base types, which fall back to STRING.
func MapType(sqlType string) (string, bool) {
	m := typeTokenRe.FindStringSubmatch(strings.TrimSpace(sqlType))
	if m == nil {
		return "STRING", false
	}

	base := strings.ToUpper(m[1])
	params := m[2]

	target, ok := typeMappings[base]
	if !ok {
		return "STRING", false
	}

	switch {
	case params != "" && target == "DECIMAL":
		return target + params, true
	case target == "STRING":
		return "STRING", true
	default:
		return target, true
	}
}

// columnDefRe matches "identifier TYPE" or "identifier TYPE(params)" at the
// start of a DDL line. Identifiers are already normalized, so they are
// either bare words or backtick-quoted.
var columnDefRe = regexp.MustCompile("^(\\s*)(`[^`]+`|\\w+)(\\s+)([A-Za-z][A-Za-z0-9]*(?:\\s*\\([^)]*\\))?)")

// reservedColumnWords are tokens that rule out a column-definition match:
// either the "identifier" slot holds a constraint keyword, or the "type"
// slot holds a keyword rather than a type name.
var reservedColumnWords = map[string]bool{
	"CONSTRAINT": true,
	"PRIMARY":    true,
	"FOREIGN":    true,
	"UNIQUE":     true,
	"CHECK":      true,
	"KEY":        true,
	"NOT":        true,
	"NULL":       true,
	"DEFAULT":    true,
	"REFERENCES": true,
	"AS":         true,
	"USING":      true,
}

// convertDataTypes maps column types line by line within a CREATE TABLE
// statement. The line carrying CREATE TABLE itself is skipped so the table
// name is never mistaken for a column, and constraint lines are skipped so
// constraint keywords are never mistaken for types.
func convertDataTypes(ddl string, log *convert.Log) string {
	lines := strings.Split(ddl, "\n")

	for i, line := range lines {
		if strings.Contains(strings.ToUpper(line), "CREATE TABLE") {
			continue
		}

		m := columnDefRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		indent, col, sep, srcType := m[1], m[2], m[3], m[4]

		typeWord := strings.ToUpper(strings.TrimSpace(strings.SplitN(srcType, "(", 2)[0]))
		if reservedColumnWords[strings.ToUpper(col)] || reservedColumnWords[typeWord] {
			continue
		}

		mapped, known := MapType(srcType)
		if !known {
			log.Warn("Unmapped type %s on column %s, defaulting to STRING", srcType, col)
		} else if mapped != srcType {
			log.Add("Converted column %s type: %s -> %s", col, srcType, mapped)
		}

		lines[i] = indent + col + sep + mapped + line[len(m[0]):]
	}

	return strings.Join(lines, "\n")
}
