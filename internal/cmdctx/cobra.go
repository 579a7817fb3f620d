// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package cmdctx bridges the sqlbridge session context and cobra commands.
package cmdctx

import (
	"errors"

	"github.com/dacolabs/sqlbridge/internal/session"
	"github.com/spf13/cobra"
)

// FromCommand extracts the sqlbridge Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *session.Context {
	return session.From(cmd.Context())
}

// RequireFromCommand extracts the sqlbridge Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*session.Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad loads the project context and stores it in the command's
// context. Used as a PersistentPreRunE for commands that require a project.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := session.Load(cmd.Context())
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

// PreRunLoadOptional loads the project context when a sqlbridge.yaml is
// present and silently continues without one when it is not. Commands that
// can take all settings from flags use this.
func PreRunLoadOptional(cmd *cobra.Command, _ []string) error {
	ctx, err := session.Load(cmd.Context())
	if errors.Is(err, session.ErrNotInitialized) {
		return nil
	}
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
