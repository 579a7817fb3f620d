// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunConvertForm prompts for any conversion settings not provided via
// flags. Input and output directories are required; catalog and schema may
// stay empty, in which case table references are left unqualified.
func RunConvertForm(input, output, catalog, schema *string) error {
	var fields []huh.Field

	if *input == "" {
		fields = append(fields, huh.NewInput().
			Title("Input directory").
			Description("Directory containing .sql and .m source files").
			Validate(requiredValidator("input directory")).
			Value(input))
	}

	if *output == "" {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Description("Directory for converted Databricks SQL files").
			Validate(requiredValidator("output directory")).
			Value(output))
	}

	if *catalog == "" {
		fields = append(fields, huh.NewInput().
			Title("Target catalog").
			Description("Unity Catalog name (optional)").
			Value(catalog))
	}

	if *schema == "" {
		fields = append(fields, huh.NewInput().
			Title("Target schema").
			Description("Schema name (optional)").
			Value(schema))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
