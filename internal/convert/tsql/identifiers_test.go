// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"testing"

	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentifiers_Identity(t *testing.T) {
	log := &convert.Log{}
	input := "SELECT id, name FROM orders WHERE total > 100"

	assert.Equal(t, input, normalizeIdentifiers(input, log))
	assert.Empty(t, log.Notes())
}

func TestNormalizeIdentifiers_SpaceBecomesBackticks(t *testing.T) {
	log := &convert.Log{}

	out := normalizeIdentifiers("SELECT [Customer Name] FROM t", log)

	assert.Equal(t, "SELECT `Customer Name` FROM t", out)
	require.Len(t, log.Notes(), 1)
	assert.Contains(t, log.Notes()[0].Message, "backticks")
}

func TestNormalizeIdentifiers_PlainBracketsStripped(t *testing.T) {
	log := &convert.Log{}

	out := normalizeIdentifiers("SELECT * FROM [dbo].[Orders]", log)

	assert.Equal(t, "SELECT * FROM dbo.Orders", out)
	require.Len(t, log.Notes(), 2)
	assert.Contains(t, log.Notes()[0].Message, "Removed unnecessary brackets")
}

func TestNormalizeIdentifiers_SpecialChars(t *testing.T) {
	log := &convert.Log{}

	out := normalizeIdentifiers("SELECT [unit/price], [a-b] FROM t", log)

	assert.Equal(t, "SELECT `unit/price`, `a-b` FROM t", out)
}

func TestNormalizeIdentifiers_EmptyBrackets(t *testing.T) {
	log := &convert.Log{}

	out := normalizeIdentifiers("SELECT [] FROM t", log)

	assert.Equal(t, "SELECT [] FROM t", out)
	assert.Empty(t, log.Notes())
}
