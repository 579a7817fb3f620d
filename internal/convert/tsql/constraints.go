// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"regexp"
	"strings"

	"github.com/dacolabs/sqlbridge/internal/convert"
)

var checkConstraintRe = regexp.MustCompile(`(?i)CHECK\s*\(`)

// analyzeConstraints classifies DDL constraints without rewriting them.
// PRIMARY KEY is enforced by Databricks and preserved as-is; FOREIGN KEY
// and CHECK constraints remain in the output text but are informational
// only in Databricks, so each produces a warning note.
func analyzeConstraints(ddl string, log *convert.Log) string {
	upper := strings.ToUpper(ddl)

	if strings.Contains(upper, "PRIMARY KEY") {
		log.Add("PRIMARY KEY constraint preserved (supported in Databricks)")
	}

	if strings.Contains(upper, "FOREIGN KEY") {
		log.Warn("FOREIGN KEY constraints are informational only in Databricks")
	}

	if checkConstraintRe.MatchString(ddl) {
		log.Warn("CHECK constraints are informational only in Databricks")
	}

	return ddl
}
