// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package databricks wraps the Databricks SDK for post-conversion testing:
// connection checks, statement execution, and EXPLAIN-based validation
// against a SQL warehouse. The conversion engine never calls into this
// package; the validate command drives it explicitly.
package databricks

import (
	"context"
	"errors"
	"fmt"

	"github.com/databricks/databricks-sdk-go"
	"github.com/databricks/databricks-sdk-go/service/sql"
)

// ErrNoWarehouse indicates no warehouse ID was configured.
var ErrNoWarehouse = errors.New("no SQL warehouse configured")

// waitTimeout is how long a statement may run synchronously before the
// warehouse reports it as still pending.
const waitTimeout = "30s"

// Client executes statements against a Databricks SQL warehouse.
type Client struct {
	w           *databricks.WorkspaceClient
	warehouseID string
}

// New builds a client from a named configuration profile and warehouse ID.
func New(profile, warehouseID string) (*Client, error) {
	if warehouseID == "" {
		return nil, ErrNoWarehouse
	}

	w, err := databricks.NewWorkspaceClient(&databricks.Config{Profile: profile})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Databricks: %w", err)
	}

	return &Client{w: w, warehouseID: warehouseID}, nil
}

// WarehouseInfo describes the configured SQL warehouse, used as a
// connection diagnostic before validation runs.
type WarehouseInfo struct {
	Name  string
	State string
	Size  string
}

// WarehouseInfo looks up the configured warehouse.
func (c *Client) WarehouseInfo(ctx context.Context) (WarehouseInfo, error) {
	if c.warehouseID == "" {
		return WarehouseInfo{}, ErrNoWarehouse
	}

	wh, err := c.w.Warehouses.GetById(ctx, c.warehouseID)
	if err != nil {
		return WarehouseInfo{}, fmt.Errorf("failed to look up warehouse %s: %w", c.warehouseID, err)
	}

	return WarehouseInfo{
		Name:  wh.Name,
		State: string(wh.State),
		Size:  wh.ClusterSize,
	}, nil
}

// TestConnection verifies workspace credentials by looking up the current
// user.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.w.CurrentUser.Me(ctx); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	return nil
}

// Execute runs one statement on the warehouse and returns an error when the
// statement does not succeed.
func (c *Client) Execute(ctx context.Context, statement string) error {
	resp, err := c.w.StatementExecution.ExecuteStatement(ctx, sql.ExecuteStatementRequest{
		Statement:   statement,
		WarehouseId: c.warehouseID,
		WaitTimeout: waitTimeout,
	})
	if err != nil {
		return fmt.Errorf("statement execution failed: %w", err)
	}

	if resp.Status == nil {
		return errors.New("statement execution returned no status")
	}
	if resp.Status.State != sql.StatementStateSucceeded {
		if resp.Status.Error != nil {
			return fmt.Errorf("statement %s: %s", resp.Status.State, resp.Status.Error.Message)
		}
		return fmt.Errorf("statement %s", resp.Status.State)
	}
	return nil
}

// Validation is the outcome of validating one statement.
type Validation struct {
	Valid   bool
	Message string
}

// Validate checks a statement's syntax by running it under EXPLAIN. A
// failure reported by the warehouse means the statement is invalid, not
// that validation itself failed; transport errors are returned as errors.
func (c *Client) Validate(ctx context.Context, statement string) (Validation, error) {
	resp, err := c.w.StatementExecution.ExecuteStatement(ctx, sql.ExecuteStatementRequest{
		Statement:   "EXPLAIN " + statement,
		WarehouseId: c.warehouseID,
		WaitTimeout: waitTimeout,
	})
	if err != nil {
		return Validation{}, fmt.Errorf("validation request failed: %w", err)
	}

	if resp.Status == nil {
		return Validation{}, errors.New("validation returned no status")
	}
	if resp.Status.State != sql.StatementStateSucceeded {
		msg := string(resp.Status.State)
		if resp.Status.Error != nil {
			msg = resp.Status.Error.Message
		}
		return Validation{Valid: false, Message: msg}, nil
	}
	return Validation{Valid: true}, nil
}
