package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Output.Dir != DefaultOutputDir {
		t.Errorf("expected output dir %s, got %s", DefaultOutputDir, cfg.Output.Dir)
	}
	if cfg.History.Driver != DefaultHistoryDriver {
		t.Errorf("expected history driver %s, got %s", DefaultHistoryDriver, cfg.History.Driver)
	}
	if !cfg.Console.Color {
		t.Error("expected color to be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		output   OutputConfig
		expected string
	}{
		{
			name:     "absolute dir json",
			output:   OutputConfig{Dir: "/project/storage", File: "test-results", Format: "json"},
			expected: "/project/storage/test-results.json",
		},
		{
			name:     "absolute dir yaml",
			output:   OutputConfig{Dir: "/tmp/out", File: "last", Format: "yaml"},
			expected: "/tmp/out/last.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Output: tt.output}
			if result := cfg.GetOutputPath(); result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}

	t.Run("relative dir is made absolute", func(t *testing.T) {
		cfg := New()
		if !filepath.IsAbs(cfg.GetOutputPath()) {
			t.Errorf("expected absolute path, got %s", cfg.GetOutputPath())
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("bad format", func(t *testing.T) {
		cfg := New()
		cfg.Output.Format = "xml"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for unsupported format")
		}
	})

	t.Run("bad driver", func(t *testing.T) {
		cfg := New()
		cfg.History.Driver = "oracle"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for unsupported driver")
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("defaults without config file", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Output.Format != DefaultOutputFormat {
			t.Errorf("expected format %s, got %s", DefaultOutputFormat, cfg.Output.Format)
		}
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(dir, "custom.yaml")
		content := "output:\n  format: yaml\nhistory:\n  enabled: true\n  driver: mysql\nconsole:\n  pad_failures: true\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Output.Format != "yaml" || cfg.History.Driver != "mysql" || !cfg.History.Enabled || !cfg.Console.PadFailures {
			t.Errorf("config file values not applied: %+v", cfg)
		}
		if cfg.Output.Dir != DefaultOutputDir {
			t.Errorf("expected default dir to survive, got %s", cfg.Output.Dir)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("UNITLITE_HISTORY_DSN", "file:env.db")
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.History.DSN != "file:env.db" {
			t.Errorf("expected env DSN, got %s", cfg.History.DSN)
		}
	})

	t.Run("dotenv file", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("UNITLITE_LOGGING_LEVEL=debug\n"), 0644); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv("UNITLITE_LOGGING_LEVEL") })

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected level from .env, got %s", cfg.Logging.Level)
		}
	})

	t.Run("invalid value left for the caller", func(t *testing.T) {
		t.Setenv("UNITLITE_OUTPUT_FORMAT", "xml")
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Output.Format != "xml" {
			t.Errorf("expected format xml, got %s", cfg.Output.Format)
		}
		if err := cfg.Validate(); err == nil {
			t.Error("expected validation error")
		}
	})
}
