// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"testing"

	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/dacolabs/sqlbridge/internal/convert/tsql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegister() convert.Register {
	return convert.Register{
		"tsql": func(t convert.Target) convert.Converter { return tsql.New(t) },
	}
}

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd(testRegister())

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"init", "convert", "validate", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestConvertCmd_MentionsConverters(t *testing.T) {
	root := NewRootCmd(testRegister())

	cmd, _, err := root.Find([]string{"convert"})
	require.NoError(t, err)
	assert.Contains(t, cmd.Long, "tsql")
}
