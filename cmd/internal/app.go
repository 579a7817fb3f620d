// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/sqlbridge/internal/commands"
	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/dacolabs/sqlbridge/internal/convert/fabric"
	"github.com/dacolabs/sqlbridge/internal/convert/powerm"
	"github.com/dacolabs/sqlbridge/internal/convert/tsql"
)

// Converters returns the converter registry the CLI is built with.
func Converters() convert.Register {
	return convert.Register{
		"tsql":    func(t convert.Target) convert.Converter { return tsql.New(t) },
		"fabric":  func(t convert.Target) convert.Converter { return fabric.New(t) },
		"power-m": func(t convert.Target) convert.Converter { return powerm.New(t) },
	}
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(Converters())
	return rootCmd.ExecuteContext(ctx)
}
