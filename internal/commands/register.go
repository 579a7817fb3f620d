// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(converters convert.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlbridge",
		Short: "Convert T-SQL, Fabric Datamart SQL, and Power Query M to Databricks SQL",
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newConvertCmd(converters))
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
