// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package convert defines the conversion model shared by all dialect
// converters and the registry the CLI selects them from.
package convert

import (
	"fmt"
	"sort"
)

// Converter converts documents of one source dialect to Databricks SQL.
type Converter interface {
	// Name returns the converter's identifier (e.g., "tsql", "power-m").
	Name() string

	// Convert translates a document and returns the converted SQL together
	// with the ordered conversion notes.
	Convert(doc Document) (Result, error)
}

// Factory builds a converter bound to a catalog/schema target.
type Factory func(target Target) Converter

// Register maps converter names to their factories.
type Register map[string]Factory

// Get retrieves a converter factory by name.
func (r Register) Get(name string) (Factory, error) {
	f, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown converter: %s", name)
	}
	return f, nil
}

// Available returns all registered converter names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
