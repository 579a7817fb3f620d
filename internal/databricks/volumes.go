// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package databricks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/databricks/databricks-sdk-go"
	"github.com/databricks/databricks-sdk-go/listing"
	"github.com/databricks/databricks-sdk-go/service/files"
)

const volumePathPrefix = "/Volumes/"

// IsVolumePath reports whether a path addresses a Unity Catalog volume
// rather than the local filesystem.
func IsVolumePath(path string) bool {
	return strings.HasPrefix(path, volumePathPrefix)
}

// NewWorkspace builds a client for volume file transfer. Unlike New, it
// requires no SQL warehouse; Execute, Validate, and WarehouseInfo return
// ErrNoWarehouse on a workspace-only client.
func NewWorkspace(profile string) (*Client, error) {
	w, err := databricks.NewWorkspaceClient(&databricks.Config{Profile: profile})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Databricks: %w", err)
	}
	return &Client{w: w}, nil
}

// ListFiles returns the paths of the files directly under a volume
// directory. Subdirectories are not descended into.
func (c *Client) ListFiles(ctx context.Context, dir string) ([]string, error) {
	it := c.w.Files.ListDirectoryContents(ctx, files.ListDirectoryContentsRequest{DirectoryPath: dir})
	entries, err := listing.ToSlice(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("failed to list volume directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDirectory {
			paths = append(paths, e.Path)
		}
	}
	return paths, nil
}

// ReadFile downloads one volume file and returns its contents.
func (c *Client) ReadFile(ctx context.Context, path string) (string, error) {
	resp, err := c.w.Files.Download(ctx, files.DownloadRequest{FilePath: path})
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", path, err)
	}
	defer resp.Contents.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Contents)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile uploads one volume file, overwriting any existing file.
func (c *Client) WriteFile(ctx context.Context, path, content string) error {
	err := c.w.Files.Upload(ctx, files.UploadRequest{
		FilePath:  path,
		Contents:  io.NopCloser(strings.NewReader(content)),
		Overwrite: true,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return nil
}

// CreateDirectory creates a volume directory. Creating an existing
// directory is not an error.
func (c *Client) CreateDirectory(ctx context.Context, dir string) error {
	if err := c.w.Files.CreateDirectory(ctx, files.CreateDirectoryRequest{DirectoryPath: dir}); err != nil {
		return fmt.Errorf("failed to create volume directory %s: %w", dir, err)
	}
	return nil
}
