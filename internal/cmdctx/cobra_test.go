// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cmdctx

import (
	"context"
	"os"
	"testing"

	"github.com/dacolabs/sqlbridge/internal/config"
	"github.com/dacolabs/sqlbridge/internal/session"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.SetContext(context.Background())
	return cmd
}

func TestPreRunLoad_NotInitialized(t *testing.T) {
	chdir(t, t.TempDir())

	err := PreRunLoad(newTestCmd(), nil)
	assert.ErrorIs(t, err, session.ErrNotInitialized)
}

func TestPreRunLoad_LoadsConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Version: config.CurrentConfigVersion, Catalog: "main", Schema: "sales"}
	require.NoError(t, cfg.Save(dir+"/"+session.ConfigFileName))
	chdir(t, dir)

	cmd := newTestCmd()
	require.NoError(t, PreRunLoad(cmd, nil))

	ctx, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, "main", ctx.Config.Catalog)
	assert.Equal(t, "sales", ctx.Config.Schema)
}

func TestPreRunLoadOptional_MissingConfigIsFine(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := newTestCmd()
	require.NoError(t, PreRunLoadOptional(cmd, nil))
	assert.Nil(t, FromCommand(cmd))
}

func TestRequireFromCommand_Missing(t *testing.T) {
	_, err := RequireFromCommand(newTestCmd())
	assert.Error(t, err)
}
