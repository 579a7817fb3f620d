// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"testing"

	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/stretchr/testify/assert"
)

func TestConvertDateFunctions_GetDate(t *testing.T) {
	log := &convert.Log{}

	out := convertDateFunctions("SELECT GETDATE()", log)

	assert.Equal(t, "SELECT CURRENT_TIMESTAMP()", out)
}

func TestConvertDateFunctions_CastGetDateAsDate(t *testing.T) {
	log := &convert.Log{}

	out := convertDateFunctions("SELECT CAST(GETDATE() AS DATE)", log)

	// The cast form collapses to CURRENT_DATE(), not a cast of a timestamp.
	assert.Equal(t, "SELECT CURRENT_DATE()", out)
	assert.NotContains(t, out, "CURRENT_TIMESTAMP")
}

func TestConvertDateFunctions_DateAddDayCurrentDate(t *testing.T) {
	log := &convert.Log{}

	out := convertDateFunctions("WHERE d > DATEADD(day, -30, GETDATE())", log)

	assert.Equal(t, "WHERE d > DATE_ADD(CURRENT_DATE(), -30)", out)
}

func TestConvertDateFunctions_DateAddMonthAndYear(t *testing.T) {
	log := &convert.Log{}

	out := convertDateFunctions("DATEADD(month, 3, GETDATE()) DATEADD(year, -1, GETDATE())", log)

	assert.Contains(t, out, "ADD_MONTHS(CURRENT_DATE(), 3)")
	assert.Contains(t, out, "ADD_MONTHS(CURRENT_DATE(), -1 * 12)")
}

func TestConvertDateFunctions_DateAddDayExpression(t *testing.T) {
	log := &convert.Log{}

	out := convertDateFunctions("DATEADD(day, 7, order_date)", log)

	assert.Equal(t, "DATE_ADD(order_date, 7)", out)
}

func TestConvertDateFunctions_DateDiffSwapsArguments(t *testing.T) {
	log := &convert.Log{}

	out := convertDateFunctions("DATEDIFF(day, start_date, end_date)", log)

	assert.Equal(t, "DATEDIFF(end_date, start_date)", out)
}

func TestConvertDateFunctions_CastExpressionAsDate(t *testing.T) {
	log := &convert.Log{}

	out := convertDateFunctions("CAST(created_at AS DATE)", log)

	assert.Equal(t, "DATE(created_at)", out)
}

func TestConvertDateFunctions_AllTimestampSpellings(t *testing.T) {
	log := &convert.Log{}

	out := convertDateFunctions("GETDATE() GETUTCDATE() SYSDATETIME()", log)

	assert.Equal(t, "CURRENT_TIMESTAMP() CURRENT_TIMESTAMP() CURRENT_TIMESTAMP()", out)
	assert.Len(t, log.Notes(), 3)
}

func TestConvertDateFunctions_CaseInsensitive(t *testing.T) {
	log := &convert.Log{}

	out := convertDateFunctions("select getdate()", log)

	assert.Equal(t, "select CURRENT_TIMESTAMP()", out)
}
