// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_String(t *testing.T) {
	assert.Equal(t, "converted something", Note{Message: "converted something"}.String())
	assert.Equal(t, "WARNING: unmapped type", Note{Message: "unmapped type", Warning: true}.String())
}

func TestTarget_Qualify(t *testing.T) {
	assert.Equal(t, "main.sales.orders", Target{Catalog: "main", Schema: "sales"}.Qualify("orders"))
	assert.Equal(t, "orders", Target{Catalog: "main"}.Qualify("orders"))
	assert.Equal(t, "orders", Target{}.Qualify("orders"))
}

func TestLog_Ordering(t *testing.T) {
	log := &Log{}
	log.Add("first")
	log.Warn("second")
	log.Add("third %d", 3)

	notes := log.Notes()
	require.Len(t, notes, 3)
	assert.Equal(t, "first", notes[0].Message)
	assert.True(t, notes[1].Warning)
	assert.Equal(t, "third 3", notes[2].Message)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, DialectPowerM, Classify("report.m", "let Source = ..."))
	assert.Equal(t, DialectPowerM, Classify("report.M", "let Source = ..."))
	assert.Equal(t, DialectTSQLDDL, Classify("orders.sql", "CREATE TABLE orders (id INT)"))
	assert.Equal(t, DialectTSQLDDL, Classify("orders.sql", "create table orders (id INT)"))
	assert.Equal(t, DialectTSQLQuery, Classify("report.sql", "SELECT * FROM orders"))
}

func TestRegister(t *testing.T) {
	reg := Register{
		"b": func(Target) Converter { return nil },
		"a": func(Target) Converter { return nil },
	}

	assert.Equal(t, []string{"a", "b"}, reg.Available())

	_, err := reg.Get("a")
	require.NoError(t, err)

	_, err = reg.Get("missing")
	assert.ErrorContains(t, err, "unknown converter")
}
