package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shashiranjanraj/stockroom/config"
)

// Manager holds the configured disks and the name of the default one.
type Manager struct {
	mu          sync.RWMutex
	disks       map[string]Disk
	defaultDisk string
}

// NewManager returns a manager with no disks whose default is name.
func NewManager(name string) *Manager {
	return &Manager{disks: map[string]Disk{}, defaultDisk: name}
}

// Connect boots a manager from config. The local disk is always present;
// the S3 disk only when S3_BUCKET is set. An S3 disk that cannot be built
// is an error only when it is the default.
func Connect(ctx context.Context) (*Manager, error) {
	m := NewManager(config.StorageDefault())

	baseURL := config.StorageURL()
	if strings.HasPrefix(baseURL, "file://") {
		baseURL = ""
	}
	m.Register("local", NewLocalDisk(config.StorageLocalRoot(), baseURL))

	if config.StorageS3Bucket() != "" {
		d, err := NewS3Disk(ctx, S3Options{
			Bucket:   config.StorageS3Bucket(),
			Region:   config.StorageS3Region(),
			Key:      config.StorageS3Key(),
			Secret:   config.StorageS3Secret(),
			Endpoint: config.StorageS3Endpoint(),
			URL:      config.StorageS3URL(),
		})
		switch {
		case err == nil:
			m.Register("s3", d)
		case m.defaultDisk == "s3":
			return nil, err
		}
	}

	if _, err := m.Default(); err != nil {
		return nil, err
	}
	return m, nil
}

// Register plugs in a disk under name.
func (m *Manager) Register(name string, d Disk) {
	m.mu.Lock()
	m.disks[name] = d
	m.mu.Unlock()
}

// Use returns the named disk.
func (m *Manager) Use(name string) (Disk, error) {
	m.mu.RLock()
	d, ok := m.disks[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDiskNotConfigured, name)
	}
	return d, nil
}

// Default returns the disk named by STORAGE_DISK.
func (m *Manager) Default() (Disk, error) { return m.Use(m.defaultDisk) }
