// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm prompts for the project configuration written to
// sqlbridge.yaml.
func RunInitForm(catalog, schema, profile, warehouseID *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target catalog").
				Description("Unity Catalog that converted tables land in").
				Value(catalog),
			huh.NewInput().
				Title("Target schema").
				Value(schema),
			huh.NewInput().
				Title("Databricks profile").
				Description("Profile name from ~/.databrickscfg used for validation").
				Value(profile),
			huh.NewInput().
				Title("SQL warehouse ID").
				Description("Warehouse used to validate converted statements").
				Value(warehouseID),
		),
	).WithTheme(Theme())

	return form.Run()
}
