// Package config loads and stores client configuration in the XDG config dir.
// Only non-secret settings are kept here; session secrets go to the storage backend.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/RichMan125/srm-ui/internal/xdg"
)

// Storage backend names accepted in Config.Storage.Backend.
const (
	StorageKeyring = "keyring"
	StorageFile    = "file"
	StorageRedis   = "redis"
	StorageMemory  = "memory"
)

// Config holds non-sensitive client settings.
type Config struct {
	BaseURL        string        `json:"base_url"`
	RequestTimeout Duration      `json:"request_timeout"`
	Locale         string        `json:"locale"`
	LogLevel       string        `json:"log_level"`
	Storage        StorageConfig `json:"storage"`
	Auth           AuthConfig    `json:"auth"`
	// Endpoints overrides individual API paths; empty fields keep the defaults.
	Endpoints map[string]string `json:"endpoints,omitempty"`
}

// StorageConfig selects and configures the key-value persistence backend.
type StorageConfig struct {
	Backend     string `json:"backend"`
	RedisAddr   string `json:"redis_addr,omitempty"`
	RedisDB     int    `json:"redis_db,omitempty"`
	RedisPrefix string `json:"redis_prefix,omitempty"`
}

// AuthConfig holds route and session policy settings.
type AuthConfig struct {
	// RouteMode is "static" or "dynamic".
	RouteMode       string   `json:"route_mode"`
	StaticSuperRole string   `json:"static_super_role"`
	RefreshSkew     Duration `json:"refresh_skew"`
	HomeRoute       string   `json:"home_route"`
}

// Duration is a time.Duration that reads and writes as a Go duration string.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		BaseURL:        "http://localhost:8080",
		RequestTimeout: Duration(10 * time.Second),
		Locale:         "en",
		LogLevel:       "info",
		Storage:        StorageConfig{Backend: StorageKeyring, RedisPrefix: "srm:"},
		Auth: AuthConfig{
			RouteMode:       "static",
			StaticSuperRole: "R_SUPER",
			RefreshSkew:     Duration(time.Minute),
			HomeRoute:       "/home",
		},
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults.
// Environment overrides are applied in both cases.
func Load() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
	}
	applyEnv(&c)
	return c, nil
}

// applyEnv overlays SRM_* environment variables.
func applyEnv(c *Config) {
	if v := os.Getenv("SRM_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SRM_STORAGE"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("SRM_REDIS_ADDR"); v != "" {
		c.Storage.RedisAddr = v
	}
	if v := os.Getenv("SRM_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Storage.RedisDB = n
		}
	}
	if v := os.Getenv("SRM_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("SRM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
