// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package fabric

import (
	"testing"

	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertQuery_NoteIdentifiesFabric(t *testing.T) {
	c := New(convert.Target{})

	res := c.ConvertQuery("SELECT GETDATE()")

	require.NotEmpty(t, res.Notes)
	assert.Equal(t, "Using Fabric Datamart converter (T-SQL dialect)", res.Notes[0].Message)
	assert.Equal(t, "SELECT CURRENT_TIMESTAMP()", res.SQL)
}

func TestConvertDDL_MatchesTSQLBehavior(t *testing.T) {
	c := New(convert.Target{})

	res := c.ConvertDDL("CREATE TABLE t (\n    active BIT\n)")

	assert.Contains(t, res.SQL, "active BOOLEAN")
	assert.Contains(t, res.SQL, "USING DELTA")
}

func TestConvert_HooksPassThrough(t *testing.T) {
	c := New(convert.Target{})

	res, err := c.Convert(convert.Document{Text: "SELECT 1", Dialect: convert.DialectTSQLQuery})
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1", res.SQL)
}

func TestConvert_Deterministic(t *testing.T) {
	c := New(convert.Target{})
	doc := convert.Document{Text: "SELECT [Order Date] FROM [dbo].[Orders]", Dialect: convert.DialectTSQLQuery}

	first, err := c.Convert(doc)
	require.NoError(t, err)
	second, err := c.Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
