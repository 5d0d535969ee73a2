package cmd

import (
	"testing"

	"github.com/zhubert/nexus/internal/config"
	"github.com/zhubert/nexus/internal/logger"
)

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestEndpointFlagsExist(t *testing.T) {
	for _, name := range []string{"endpoint", "path", "log-file"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"ask": false, "configure": false, "clear-logs": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	tests := []struct {
		name    string
		v, c, d string
		want    string
	}{
		{"release", "1.2.3", "abc123", "2026-01-01", "nexus 1.2.3\n  commit: abc123\n  built:  2026-01-01\n"},
		{"dev build", "dev", "none", "unknown", "nexus dev\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersionInfo(tt.v, tt.c, tt.d)
			if got := versionTemplate(); got != tt.want {
				t.Errorf("versionTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInitLogging_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()
	defer logger.Reset()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initLogging()
}

func TestApplyFlags(t *testing.T) {
	origEndpoint, origPath, origLog := endpointFlag, pathFlag, logFileFlag
	defer func() { endpointFlag, pathFlag, logFileFlag = origEndpoint, origPath, origLog }()

	tests := []struct {
		name     string
		endpoint string
		path     string
		logFile  string
		wantURL  string
		wantLog  string
		wantErr  bool
	}{
		{name: "no flags", wantURL: "http://localhost:8000/research", wantLog: logger.DefaultLogPath},
		{name: "endpoint override", endpoint: "https://agents.example.com/", wantURL: "https://agents.example.com/research", wantLog: logger.DefaultLogPath},
		{name: "path override", path: "/v2/ask", wantURL: "http://localhost:8000/v2/ask", wantLog: logger.DefaultLogPath},
		{name: "log file", logFile: "/tmp/x.log", wantURL: "http://localhost:8000/research", wantLog: "/tmp/x.log"},
		{name: "bad endpoint", endpoint: "localhost:8000", wantErr: true},
		{name: "bad path", path: "research", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpointFlag, pathFlag, logFileFlag = tt.endpoint, tt.path, tt.logFile
			cfg := &config.Config{Endpoint: "http://localhost:8000", Path: "/research"}

			got, err := applyFlags(cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.URL() != tt.wantURL {
				t.Errorf("URL() = %q, want %q", got.URL(), tt.wantURL)
			}
			if lp := logFilePath(got); lp != tt.wantLog {
				t.Errorf("logFilePath() = %q, want %q", lp, tt.wantLog)
			}
		})
	}
}

func TestLogFilePath_NilConfig(t *testing.T) {
	if got := logFilePath(nil); got != logger.DefaultLogPath {
		t.Errorf("logFilePath(nil) = %q, want %q", got, logger.DefaultLogPath)
	}
}

func TestLoadConfig_FlagsOverrideEnvBeforeValidation(t *testing.T) {
	origEndpoint, origPath, origLog := endpointFlag, pathFlag, logFileFlag
	defer func() { endpointFlag, pathFlag, logFileFlag = origEndpoint, origPath, origLog }()

	tests := []struct {
		name    string
		envURL  string
		flagURL string
		wantURL string
		wantErr bool
	}{
		{name: "flag fixes bad env", envURL: "ftp://bad", flagURL: "http://good:8000", wantURL: "http://good:8000/research"},
		{name: "bad env without flag", envURL: "ftp://bad", wantErr: true},
		{name: "env without flag", envURL: "http://env:9000", wantURL: "http://env:9000/research"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv(config.EnvEndpoint, tt.envURL)
			t.Setenv(config.EnvPath, "")
			endpointFlag, pathFlag, logFileFlag = tt.flagURL, "", ""

			cfg, err := loadConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if cfg.URL() != tt.wantURL {
				t.Errorf("URL() = %q, want %q", cfg.URL(), tt.wantURL)
			}
		})
	}
}

func TestLoadConfig_FlagFixesBadConfigFile(t *testing.T) {
	origEndpoint, origPath := endpointFlag, pathFlag
	defer func() { endpointFlag, pathFlag = origEndpoint, origPath }()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvPath, "")
	writeConfigFile(t, home, `{"endpoint":"localhost:8000"}`)

	endpointFlag, pathFlag = "http://good:8000", ""
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.GetEndpoint() != "http://good:8000" {
		t.Errorf("Endpoint = %q", cfg.GetEndpoint())
	}
}
