// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package fabric converts Microsoft Fabric Datamart SQL to Databricks SQL.
// Fabric Datamarts speak the T-SQL dialect, so the converter composes the
// T-SQL pipeline and adds an ordered list of Fabric-specific rewrite hooks
// on top. The hook list is the seam for future dialect divergence; today it
// holds a single passthrough.
package fabric

import (
	"github.com/dacolabs/sqlbridge/internal/convert"
	"github.com/dacolabs/sqlbridge/internal/convert/tsql"
)

// Hook is one named Fabric-specific rewrite applied after the T-SQL
// pipeline.
type Hook struct {
	Name  string
	Apply func(sql string, log *convert.Log) string
}

// Converter converts Fabric Datamart SQL documents.
type Converter struct {
	tsql  *tsql.Converter
	hooks []Hook
}

// New returns a Fabric converter for the given target.
func New(target convert.Target) *Converter {
	return &Converter{
		tsql: tsql.New(target),
		hooks: []Hook{
			// Fabric currently uses standard T-SQL; the slot is reserved
			// for dialect-specific rewrites.
			{Name: "fabric-specific-features", Apply: passthrough},
		},
	}
}

// Name returns the converter's registry identifier.
func (c *Converter) Name() string {
	return "fabric"
}

// Convert converts one Fabric document. Every result begins with a note
// identifying the Fabric converter, followed by the T-SQL pipeline notes
// and any hook notes.
func (c *Converter) Convert(doc convert.Document) (convert.Result, error) {
	res, err := c.tsql.Convert(doc)
	if err != nil {
		return convert.Result{}, err
	}
	return c.finish(res), nil
}

// ConvertQuery converts a freeform Fabric query.
func (c *Converter) ConvertQuery(query string) convert.Result {
	return c.finish(c.tsql.ConvertQuery(query))
}

// ConvertDDL converts a Fabric CREATE TABLE statement.
func (c *Converter) ConvertDDL(ddl string) convert.Result {
	return c.finish(c.tsql.ConvertDDL(ddl))
}

func (c *Converter) finish(res convert.Result) convert.Result {
	log := &convert.Log{}
	log.Add("Using Fabric Datamart converter (T-SQL dialect)")

	notes := append(log.Notes(), res.Notes...)

	hookLog := &convert.Log{}
	sql := res.SQL
	for _, h := range c.hooks {
		sql = h.Apply(sql, hookLog)
	}
	notes = append(notes, hookLog.Notes()...)

	return convert.Result{SQL: sql, Notes: notes}
}

func passthrough(sql string, _ *convert.Log) string {
	return sql
}
