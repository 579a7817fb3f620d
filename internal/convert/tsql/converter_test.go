// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tsql

import (
	"testing"

	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertQuery_Pipeline(t *testing.T) {
	c := New(convert.Target{})

	res := c.ConvertQuery("SELECT [Customer Name], ISNULL(email, 'n/a'), GETDATE()\nFROM [dbo].[Orders]")

	assert.Equal(t, "SELECT `Customer Name`, COALESCE(email, 'n/a') , CURRENT_TIMESTAMP() FROM dbo.Orders", res.SQL)
	assert.NotEmpty(t, res.Notes)
}

func TestConvertQuery_RemovesPowerQueryLineFeeds(t *testing.T) {
	c := New(convert.Target{})

	res := c.ConvertQuery("SELECT a,#(lf)b FROM t")

	assert.NotContains(t, res.SQL, "#(lf)")
	assert.Equal(t, "SELECT a, b FROM t", res.SQL)
}

func TestConvertQuery_CollapsesWhitespace(t *testing.T) {
	c := New(convert.Target{})

	res := c.ConvertQuery("SELECT   a ,   b\n\nFROM    t")

	assert.Equal(t, "SELECT a, b FROM t", res.SQL)
}

func TestConvertDDL_Pipeline(t *testing.T) {
	c := New(convert.Target{})
	ddl := "CREATE TABLE [dbo].[Orders] (\n" +
		"    [OrderID] INT NOT NULL PRIMARY KEY,\n" +
		"    [Customer Name] NVARCHAR(100),\n" +
		"    Amount DECIMAL(10,2),\n" +
		"    Active BIT,\n" +
		"    Created DATETIME DEFAULT GETDATE(),\n" +
		"    RowGuid UNIQUEIDENTIFIER DEFAULT NEWID()\n" +
		")"

	res := c.ConvertDDL(ddl)

	assert.Contains(t, res.SQL, "CREATE TABLE dbo.Orders")
	assert.Contains(t, res.SQL, "OrderID INT NOT NULL PRIMARY KEY")
	assert.Contains(t, res.SQL, "`Customer Name` STRING")
	assert.Contains(t, res.SQL, "Amount DECIMAL(10,2)")
	assert.Contains(t, res.SQL, "Active BOOLEAN")
	assert.Contains(t, res.SQL, "Created TIMESTAMP DEFAULT CURRENT_TIMESTAMP()")
	assert.Contains(t, res.SQL, "RowGuid STRING DEFAULT UUID()")
	assert.Contains(t, res.SQL, ") USING DELTA")
}

func TestConvertDDL_ForeignKeyWarningTextUnchanged(t *testing.T) {
	c := New(convert.Target{})
	ddl := "CREATE TABLE t (\n    cid INT,\n    FOREIGN KEY (cid) REFERENCES customers(id)\n)"

	res := c.ConvertDDL(ddl)

	assert.Contains(t, res.SQL, "FOREIGN KEY (cid) REFERENCES customers(id)")

	var warned bool
	for _, n := range res.Notes {
		if n.Warning && n.Message == "FOREIGN KEY constraints are informational only in Databricks" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestConvert_DispatchesByDialect(t *testing.T) {
	c := New(convert.Target{})

	ddlRes, err := c.Convert(convert.Document{Text: "CREATE TABLE t (id INT)", Dialect: convert.DialectTSQLDDL})
	require.NoError(t, err)
	assert.Contains(t, ddlRes.SQL, "USING DELTA")

	queryRes, err := c.Convert(convert.Document{Text: "SELECT GETDATE()", Dialect: convert.DialectTSQLQuery})
	require.NoError(t, err)
	assert.Contains(t, queryRes.SQL, "CURRENT_TIMESTAMP()")

	_, err = c.Convert(convert.Document{Text: "let Source = 1", Dialect: convert.DialectPowerM})
	assert.Error(t, err)
}

func TestConvertQuery_Deterministic(t *testing.T) {
	c := New(convert.Target{Catalog: "main", Schema: "sales"})
	query := "SELECT [Customer Name], ISNULL(a, b), CAST(GETDATE() AS DATE) FROM [dbo].[Orders]"

	first := c.ConvertQuery(query)
	second := c.ConvertQuery(query)

	assert.Equal(t, first.SQL, second.SQL)
	assert.Equal(t, first.Notes, second.Notes)
}
