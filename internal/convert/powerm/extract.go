// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package powerm

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dacolabs/sqlbridge/internal/convert"
)

// sourceInfo is the detected data source of an M script.
type sourceInfo struct {
	kind string // "Salesforce", "SQLServer", or "Unknown"
	url  string // endpoint URL for Salesforce sources
}

var (
	salesforceRe = regexp.MustCompile(`Salesforce\.Data\("([^"]+)"`)

	nameStepRe        = regexp.MustCompile(`\[Name="([^"]+)"\]`)
	salesforceTableRe = regexp.MustCompile(`Source\{\[Name="([^"]+)"\]\}\[Data\]`)

	selectColumnsRe = regexp.MustCompile(`Table\.SelectColumns\([^,]+,\s*\{([^\}]+)\}`)
	quotedRe        = regexp.MustCompile(`"([^"]+)"`)

	previousDaysRe   = regexp.MustCompile(`Date\.IsInPreviousNDays\(\[([^\]]+)\],\s*(\d+)\)`)
	previousWeeksRe  = regexp.MustCompile(`Date\.IsInPreviousNWeeks\(\[([^\]]+)\],\s*(\d+)\)`)
	previousMonthsRe = regexp.MustCompile(`Date\.IsInPreviousNMonths\(\[([^\]]+)\],\s*(\d+)\)`)
	previousYearsRe  = regexp.MustCompile(`Date\.IsInPreviousNYears\(\[([^\]]+)\],\s*(\d+)\)`)

	tableSortRe = regexp.MustCompile(`Table\.Sort\([^,]+,\s*\{\{"([^"]+)",\s*Order\.(\w+)\}\}`)
)

// extractSource detects the data source. Priority order: Salesforce, then
// SQL Server, then Unknown with a warning. First match wins.
func extractSource(script string, log *convert.Log) sourceInfo {
	if m := salesforceRe.FindStringSubmatch(script); m != nil {
		log.Add("Detected Salesforce data source")
		return sourceInfo{kind: "Salesforce", url: m[1]}
	}

	if strings.Contains(script, "Sql.Database") || strings.Contains(script, "Sql.Databases") {
		log.Add("Detected SQL Server data source")
		return sourceInfo{kind: "SQLServer"}
	}

	log.Warn("Could not detect data source type")
	return sourceInfo{kind: "Unknown"}
}

// extractTableName finds the target table name: a [Name="X"] step
// reference first, then the Source{[Name="X"]}[Data] shape common in
// Salesforce extracts, else the literal unknown_table. Names are
// lower-cased with spaces replaced by underscores.
func extractTableName(script string, log *convert.Log) string {
	if m := nameStepRe.FindStringSubmatch(script); m != nil {
		log.Add("Extracted table name: %s", m[1])
		return normalizeTableName(m[1])
	}

	if m := salesforceTableRe.FindStringSubmatch(script); m != nil {
		log.Add("Extracted Salesforce object name: %s", m[1])
		return normalizeTableName(m[1])
	}

	log.Warn("No table name found, using unknown_table")
	return "unknown_table"
}

func normalizeTableName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// extractSelectedColumns returns the column projection from a
// Table.SelectColumns step, or ["*"] when the script selects everything.
func extractSelectedColumns(script string, log *convert.Log) []string {
	if m := selectColumnsRe.FindStringSubmatch(script); m != nil {
		var columns []string
		for _, q := range quotedRe.FindAllStringSubmatch(m[1], -1) {
			columns = append(columns, q[1])
		}
		if len(columns) > 0 {
			log.Add("Found %d selected columns", len(columns))
			return columns
		}
	}

	log.Add("No column selection found, using SELECT *")
	return []string{"*"}
}

// extractDateFilter translates "is in previous N <unit>" steps to an
// interval filter. A value of exactly 365 days becomes a 12-month filter:
// a fiscal-year alignment rule, not a unit conversion. Weeks translate to
// N*7 days.
func extractDateFilter(script string, log *convert.Log) string {
	if m := previousDaysRe.FindStringSubmatch(script); m != nil {
		column, days := m[1], m[2]
		if days == "365" {
			log.Add("Converted Date.IsInPreviousNDays(%s) to 12 months filter", days)
			return fmt12MonthFilter(column)
		}
		log.Add("Converted Date.IsInPreviousNDays(%s) to days filter", days)
		return column + " >= CURRENT_DATE() - INTERVAL " + days + " DAYS"
	}

	if m := previousWeeksRe.FindStringSubmatch(script); m != nil {
		column := m[1]
		weeks, _ := strconv.Atoi(m[2])
		log.Add("Converted Date.IsInPreviousNWeeks(%d) to days filter", weeks)
		return column + " >= CURRENT_DATE() - INTERVAL " + strconv.Itoa(weeks*7) + " DAYS"
	}

	if m := previousMonthsRe.FindStringSubmatch(script); m != nil {
		column, months := m[1], m[2]
		log.Add("Converted Date.IsInPreviousNMonths(%s)", months)
		return column + " >= CURRENT_DATE() - INTERVAL " + months + " MONTHS"
	}

	if m := previousYearsRe.FindStringSubmatch(script); m != nil {
		column, years := m[1], m[2]
		log.Add("Converted Date.IsInPreviousNYears(%s)", years)
		return column + " >= CURRENT_DATE() - INTERVAL " + years + " YEARS"
	}

	log.Add("No date filter found")
	return ""
}

func fmt12MonthFilter(column string) string {
	return column + " >= CURRENT_DATE() - INTERVAL 12 MONTHS"
}

// extractSortOrder finds a single-column Table.Sort step. Descending maps
// to DESC, anything else to ASC.
func extractSortOrder(script string, log *convert.Log) string {
	if m := tableSortRe.FindStringSubmatch(script); m != nil {
		column, order := m[1], "ASC"
		if m[2] == "Descending" {
			order = "DESC"
		}
		log.Add("Found sort order: %s %s", column, order)
		return column + " " + order
	}

	log.Add("No sort order found")
	return ""
}
