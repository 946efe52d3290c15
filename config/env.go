package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	defaultAppEnv      = "local"
	defaultMaxProducts = 10
	defaultStorageDisk = "local"
	defaultStorageRoot = "storage"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = newStore()
)

// Load reads config/app.json and .env once. Environment variables override
// both files.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

// LoadFrom replaces the configuration with the given files. Missing files
// are skipped. Intended for tests and alternate working directories.
func LoadFrom(configPath, envPath string) error {
	loadOnce.Do(func() {})
	return loadFromFiles(configPath, envPath)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

func LogLevel() string {
	_ = Load()
	return strings.ToLower(get("LOG_LEVEL", ""))
}

// LogFile is the rotated log destination; empty means stderr.
func LogFile() string {
	_ = Load()
	return get("LOG_FILE", "")
}

// MaxProducts is the product limit of a console session; 0 means unlimited.
func MaxProducts() int {
	_ = Load()
	n, err := cast.ToIntE(trimLeadingZeros(get("MAX_PRODUCTS", "")))
	if err != nil || n < 0 {
		return defaultMaxProducts
	}
	return n
}

// MetricsExport is the storage path the session counters are written to
// on exit; empty disables the dump.
func MetricsExport() string {
	_ = Load()
	return get("METRICS_EXPORT", "")
}

// ── Storage ──────────────────────────────────────────────────────────────────

func StorageDefault() string {
	_ = Load()
	return get("STORAGE_DISK", defaultStorageDisk)
}

func StorageLocalRoot() string {
	_ = Load()
	return get("STORAGE_LOCAL_ROOT", defaultStorageRoot)
}

func StorageURL() string {
	_ = Load()
	return get("STORAGE_URL", "file://"+defaultStorageRoot)
}

func StorageS3Bucket() string { _ = Load(); return get("S3_BUCKET", "") }
func StorageS3Region() string { _ = Load(); return get("S3_REGION", "us-east-1") }
func StorageS3Key() string { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string { _ = Load(); return get("S3_SECRET", "") }
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }
func StorageS3URL() string { _ = Load(); return get("S3_URL", "") }

func newStore() *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_ENV", defaultAppEnv)
	v.SetDefault("MAX_PRODUCTS", defaultMaxProducts)
	v.SetDefault("STORAGE_DISK", defaultStorageDisk)
	v.SetDefault("STORAGE_LOCAL_ROOT", defaultStorageRoot)
	v.AutomaticEnv()
	return v
}

func loadFromFiles(configPath, envPath string) error {
	loaded := newStore()

	if err := mergeFile(loaded, configPath, "json"); err != nil {
		return err
	}
	if err := mergeFile(loaded, envPath, "env"); err != nil {
		return err
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeFile(v *viper.Viper, path, format string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer file.Close()

	v.SetConfigType(format)
	if err := v.MergeConfig(file); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values.GetString(key)); value != "" {
		return value
	}

	return fallback
}

// trimLeadingZeros keeps cast from reading "010" or "+010" as octal.
func trimLeadingZeros(s string) string {
	t := strings.TrimLeft(strings.TrimPrefix(strings.TrimSpace(s), "+"), "0")
	if t == "" && s != "" {
		return "0"
	}
	return t
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

// Set overrides key for the rest of the process, above files and
// environment. The CLI uses it to apply command-line flags.
func Set(key string, value any) {
	_ = Load()
	mu.Lock()
	defer mu.Unlock()
	values.Set(key, cast.ToString(value))
}
