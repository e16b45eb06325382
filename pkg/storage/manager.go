package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/shashiranjanraj/kirana/config"
	"github.com/shashiranjanraj/kirana/pkg/logger"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager.
// Call once at application startup (internal/server).
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDefault()

	// Always boot the local disk.
	disks["local"] = newLocalDisk()

	// Boot the S3 disk only when a bucket is configured.
	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// RegisterDisk plugs in a custom Disk implementation (used by tests).
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}

// ─── Default disk helpers ─────────────────────────────────────────────────────

func defaultD() Disk {
	managerMu.RLock()
	name := defaultDisk
	managerMu.RUnlock()
	if name == "" {
		name = "local"
	}
	return Use(name)
}

// Put writes content to path on the default disk.
func Put(path string, content []byte) error { return defaultD().Put(path, content) }

// PutStream writes from r to path on the default disk.
func PutStream(path string, r io.Reader) error { return defaultD().PutStream(path, r) }

// Get returns file content from the default disk.
func Get(path string) ([]byte, error) { return defaultD().Get(path) }

// Exists reports whether path exists on the default disk.
func Exists(path string) bool { return defaultD().Exists(path) }

// Delete removes path from the default disk.
func Delete(path string) error { return defaultD().Delete(path) }

// URL returns the public URL for path on the default disk.
func URL(path string) string { return defaultD().URL(path) }
