// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sqlbridge.yaml")

	cfg := &Config{
		Version:     CurrentConfigVersion,
		Catalog:     "main",
		Schema:      "sales",
		Profile:     "DEFAULT",
		WarehouseID: "abc123",
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Version: CurrentConfigVersion}
	assert.NoError(t, cfg.Validate())

	cfg.Version = 99
	assert.Error(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
