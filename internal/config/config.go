package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// LibraryConfig holds the SQLite document library settings.
type LibraryConfig struct {
	Path          string
	BusyTimeoutMS int
}

// RecentConfig holds the recent-files ledger settings.
type RecentConfig struct {
	Path string
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// Prefix is prepended to every object key, e.g. "exports".
	Prefix string
	UseSSL bool
}

// ExportConfig selects where exported HTML documents are written.
// Backend is either "local" (Dir on disk) or "minio".
type ExportConfig struct {
	Backend string
	Dir     string
	MinIO   MinIOConfig
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Host     string
	Port     string
	DataDir  string
	LogLevel string
	Library  LibraryConfig
	Recent   RecentConfig
	Export   ExportConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Paths left unset are derived from the data directory, see ResolvePaths.
func Load() *AppConfig {
	return LoadWithDataDir("")
}

// LoadWithDataDir is Load with dataDir, when non-empty, taking precedence over
// MDLIB_DATA_DIR before any path is derived from it.
func LoadWithDataDir(dataDir string) *AppConfig {
	if dataDir == "" {
		dataDir = getEnv("MDLIB_DATA_DIR", "./data")
	}
	cfg := &AppConfig{
		Host:     getEnv("MDLIB_HOST", "127.0.0.1"),
		Port:     getEnv("MDLIB_PORT", "7345"),
		DataDir:  dataDir,
		LogLevel: getEnv("MDLIB_LOG_LEVEL", "info"),
		Library: LibraryConfig{
			Path:          getEnv("MDLIB_DB_PATH", ""),
			BusyTimeoutMS: getEnvInt("MDLIB_DB_BUSY_TIMEOUT_MS", 5000),
		},
		Recent: RecentConfig{
			Path: getEnv("MDLIB_RECENT_PATH", ""),
		},
		Export: ExportConfig{
			Backend: getEnv("MDLIB_EXPORT_BACKEND", "local"),
			Dir:     getEnv("MDLIB_EXPORT_DIR", ""),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				Prefix:    getEnv("MINIO_PREFIX", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
		},
	}
	cfg.ResolvePaths()
	return cfg
}

// ResolvePaths fills every unset file location from DataDir.
// Explicit paths are kept.
func (c *AppConfig) ResolvePaths() {
	if c.Library.Path == "" {
		c.Library.Path = filepath.Join(c.DataDir, "database", "library.db")
	}
	if c.Recent.Path == "" {
		c.Recent.Path = filepath.Join(c.DataDir, "recent-files.json")
	}
	if c.Export.Dir == "" {
		c.Export.Dir = filepath.Join(c.DataDir, "exports")
	}
}

// Addr returns the listen address of the command surface.
func (c *AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
