// Package storage is the destination for exported reports.
//
// Two drivers are available:
//   - "local"  local filesystem (default)
//   - "s3"     S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	m, err := storage.Connect(ctx)
//	d, _ := m.Default()
//	if !d.Exists(ctx, "exports/products.csv") {
//		d.Put(ctx, "exports/products.csv", data)
//	}
//	fmt.Println(d.URL("exports/products.csv"))
package storage

import (
	"context"
	"errors"
)

// ErrDiskNotConfigured is returned when a disk name has no driver.
var ErrDiskNotConfigured = errors.New("storage: disk is not configured")

// Disk is the driver interface every storage backend implements.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(ctx context.Context, path string, content []byte) error

	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path string) bool

	// URL returns the location of path as shown to the user.
	URL(path string) string
}
