package config

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	nerrors "github.com/zhubert/nexus/internal/errors"
)

const (
	// DefaultEndpoint is where the research service listens when run locally.
	DefaultEndpoint = "http://localhost:8000"

	// DefaultPath is the fixed service path for research queries.
	DefaultPath = "/research"

	// Environment overrides, applied after the config file.
	EnvEndpoint = "NEXUS_ENDPOINT"
	EnvPath     = "NEXUS_PATH"
)

// Config holds the application configuration. Conversation history is never
// stored here; it lives only for the lifetime of the process.
type Config struct {
	Endpoint             string `json:"endpoint,omitempty"`              // Base URL of the research service
	Path                 string `json:"path,omitempty"`                  // Service path, e.g. "/research"
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when a reply arrives
	LogFile              string `json:"log_file,omitempty"`              // Debug log location

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nexus"), nil
}

// DefaultFilePath returns ~/.nexus/config.json.
func DefaultFilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default location and applies environment
// overrides. The result is not validated: callers layer command-line flags on
// top and call Validate once everything is applied.
func Load() (*Config, error) {
	path, err := DefaultFilePath()
	if err != nil {
		return nil, nerrors.ConfigLoadFailed("~/.nexus/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path and applies environment overrides. A
// missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.ensureDefaults()
	return cfg, nil
}

// LoadFile reads only the config file at the default location, ignoring the
// environment. Use it when the config is going to be saved back.
func LoadFile() (*Config, error) {
	path, err := DefaultFilePath()
	if err != nil {
		return nil, nerrors.ConfigLoadFailed("~/.nexus/config.json", err)
	}
	return LoadFileFrom(path)
}

// LoadFileFrom is LoadFile for an explicit path.
func LoadFileFrom(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ensureDefaults()
	return cfg, nil
}

func readFile(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, nerrors.ConfigLoadFailed(path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, nerrors.ConfigLoadFailed(path, err)
		}
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvPath); v != "" {
		c.Path = v
	}
}

// ensureDefaults fills empty fields. Only called while loading, before the
// Config is shared.
func (c *Config) ensureDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Path == "" {
		c.Path = DefaultPath
	}
	c.Endpoint = strings.TrimSuffix(c.Endpoint, "/")
}

// Validate checks that the endpoint is an absolute http(s) URL and the path
// is rooted.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return validate(c.Endpoint, c.Path)
}

func validate(endpoint, path string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nerrors.ConfigInvalid("endpoint is not a valid URL: " + endpoint)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nerrors.ConfigInvalid("endpoint must use http or https: " + endpoint)
	}
	if u.Host == "" {
		return nerrors.ConfigInvalid("endpoint has no host: " + endpoint)
	}
	if !strings.HasPrefix(path, "/") {
		return nerrors.ConfigInvalid("path must start with '/': " + path)
	}
	return nil
}

// ValidateEndpoint is used by input forms before a value is committed.
func ValidateEndpoint(endpoint string) error {
	return validate(strings.TrimSuffix(endpoint, "/"), DefaultPath)
}

// ValidatePath is used by input forms before a value is committed.
func ValidatePath(path string) error {
	return validate(DefaultEndpoint, path)
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filePath == "" {
		path, err := DefaultFilePath()
		if err != nil {
			return nerrors.ConfigSaveFailed("~/.nexus/config.json", err)
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return nerrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nerrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return nerrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// FilePath returns where Save writes.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// URL returns the full research URL (endpoint + path).
func (c *Config) URL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Endpoint + c.Path
}

// GetEndpoint returns the research service base URL
func (c *Config) GetEndpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Endpoint
}

// SetEndpoint overrides the base URL, e.g. from a command-line flag.
func (c *Config) SetEndpoint(endpoint string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Endpoint = strings.TrimSuffix(endpoint, "/")
}

// GetPath returns the research service path
func (c *Config) GetPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Path
}

// SetPath overrides the service path.
func (c *Config) SetPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Path = path
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetLogFile returns the configured debug log path, or "" for the default.
func (c *Config) GetLogFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LogFile
}

// SetLogFile sets the debug log path.
func (c *Config) SetLogFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LogFile = path
}
