// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"testing"

	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSystemFunctions_Scalars(t *testing.T) {
	log := &convert.Log{}

	out := convertSystemFunctions("SELECT ISNULL(a, b), LEN(name), CHARINDEX('x', s), STUFF(s, 1, 2, 'y'), DATEPART(year, d)", log)

	assert.Contains(t, out, "COALESCE(a, b)")
	assert.Contains(t, out, "LENGTH(name)")
	assert.Contains(t, out, "INSTR('x', s)")
	assert.Contains(t, out, "OVERLAY(s, 1, 2, 'y')")
	assert.Contains(t, out, "EXTRACT(year, d)")
	assert.Len(t, log.Notes(), 5)
}

func TestConvertSystemFunctions_WordBounded(t *testing.T) {
	log := &convert.Log{}

	// LEN inside LENGTH or an identifier must not be rewritten.
	out := convertSystemFunctions("SELECT LENGTH(name), fallen FROM t", log)

	assert.Equal(t, "SELECT LENGTH(name), fallen FROM t", out)
	assert.Empty(t, log.Notes())
}

func TestConvertSystemFunctions_NewID(t *testing.T) {
	log := &convert.Log{}

	out := convertSystemFunctions("SELECT NEWID()", log)

	assert.Equal(t, "SELECT UUID()", out)
}

func TestConvertSystemFunctions_BareCurrentTimestamp(t *testing.T) {
	log := &convert.Log{}

	out := convertSystemFunctions("SELECT CURRENT_TIMESTAMP", log)

	assert.Equal(t, "SELECT CURRENT_TIMESTAMP()", out)
	require.Len(t, log.Notes(), 1)
}

func TestConvertSystemFunctions_CurrentTimestampCallUntouched(t *testing.T) {
	log := &convert.Log{}

	out := convertSystemFunctions("SELECT CURRENT_TIMESTAMP()", log)

	assert.Equal(t, "SELECT CURRENT_TIMESTAMP()", out)
	assert.Empty(t, log.Notes())
}

func TestConvertSystemFunctions_CaseInsensitive(t *testing.T) {
	log := &convert.Log{}

	out := convertSystemFunctions("select isnull(a, b)", log)

	assert.Equal(t, "select COALESCE(a, b)", out)
}
