package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	nerrors "github.com/zhubert/nexus/internal/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvPath, "")
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.GetEndpoint() != DefaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", cfg.GetEndpoint(), DefaultEndpoint)
	}
	if cfg.GetPath() != DefaultPath {
		t.Errorf("Path = %q, want %q", cfg.GetPath(), DefaultPath)
	}
	if got := cfg.URL(); got != "http://localhost:8000/research" {
		t.Errorf("URL() = %q", got)
	}
	if cfg.GetNotificationsEnabled() {
		t.Error("notifications should default to off")
	}
}

func TestLoadFrom_ReadsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"endpoint":"https://agents.example.com/","path":"/v2/research","notifications_enabled":true}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if got := cfg.URL(); got != "https://agents.example.com/v2/research" {
		t.Errorf("URL() = %q, trailing slash should be trimmed", got)
	}
	if !cfg.GetNotificationsEnabled() {
		t.Error("notifications should be enabled")
	}
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"endpoint":"http://file:1"}`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvEndpoint, "http://env:2")
	t.Setenv(EnvPath, "/ask")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if got := cfg.URL(); got != "http://env:2/ask" {
		t.Errorf("URL() = %q, want env values", got)
	}
}

func TestLoadFrom_DoesNotValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"endpoint":"localhost:8000","path":"research"}`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvEndpoint, "ftp://bad")
	t.Setenv(EnvPath, "")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v, want the merged config", err)
	}
	if cfg.GetEndpoint() != "ftp://bad" {
		t.Errorf("Endpoint = %q, want env value", cfg.GetEndpoint())
	}
	if err := cfg.Validate(); !nerrors.Is(err, nerrors.KindInvalid) {
		t.Errorf("Validate() error = %v, want KindInvalid", err)
	}

	cfg.SetEndpoint("http://good:8000")
	cfg.SetPath("/research")
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after overrides error = %v", err)
	}
}

func TestLoadFileFrom_IgnoresEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"endpoint":"http://file:1","path":"/file"}`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvEndpoint, "http://env:2")
	t.Setenv(EnvPath, "/env")

	cfg, err := LoadFileFrom(path)
	if err != nil {
		t.Fatalf("LoadFileFrom() error = %v", err)
	}
	if got := cfg.URL(); got != "http://file:1/file" {
		t.Errorf("URL() = %q, want file values", got)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
}

func TestLoadFileFrom_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvEndpoint, "http://env:2")

	cfg, err := LoadFileFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFileFrom() error = %v", err)
	}
	if cfg.GetEndpoint() != DefaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", cfg.GetEndpoint(), DefaultEndpoint)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if !nerrors.Is(err, nerrors.KindConfig) {
		t.Errorf("LoadFrom() error = %v, want KindConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		path     string
		wantErr  bool
	}{
		{"default", DefaultEndpoint, DefaultPath, false},
		{"https", "https://example.com", "/research", false},
		{"no scheme", "localhost:8000", "/research", true},
		{"ftp scheme", "ftp://example.com", "/research", true},
		{"no host", "http://", "/research", true},
		{"relative path", DefaultEndpoint, "research", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Endpoint: tt.endpoint, Path: tt.path}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !nerrors.Is(err, nerrors.KindInvalid) {
				t.Errorf("Validate() error kind = %v, want KindInvalid", nerrors.GetKind(err))
			}
		})
	}
}

func TestValidateFormHelpers(t *testing.T) {
	if err := ValidateEndpoint("http://localhost:9000/"); err != nil {
		t.Errorf("ValidateEndpoint() error = %v", err)
	}
	if err := ValidateEndpoint("nope"); err == nil {
		t.Error("ValidateEndpoint() should reject a bare word")
	}
	if err := ValidatePath("/research"); err != nil {
		t.Errorf("ValidatePath() error = %v", err)
	}
	if err := ValidatePath("research"); err == nil {
		t.Error("ValidatePath() should reject an unrooted path")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	cfg.SetEndpoint("http://remote:8000/")
	cfg.SetNotificationsEnabled(true)
	cfg.SetLogFile("/tmp/x.log")

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	var onDisk map[string]interface{}
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		t.Fatalf("config file is not JSON: %v", err)
	}
	if onDisk["endpoint"] != "http://remote:8000" {
		t.Errorf("endpoint on disk = %v", onDisk["endpoint"])
	}
	for key := range onDisk {
		if strings.Contains(key, "history") || strings.Contains(key, "message") {
			t.Errorf("config must not persist conversation data, found key %q", key)
		}
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.GetEndpoint() != "http://remote:8000" || !reloaded.GetNotificationsEnabled() || reloaded.GetLogFile() != "/tmp/x.log" {
		t.Errorf("reloaded config mismatch: %+v", reloaded)
	}
	if reloaded.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", reloaded.FilePath(), path)
	}
}
