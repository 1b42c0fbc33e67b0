package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "coolparse.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Parser.MaxErrors != 50 {
		t.Errorf("Parser.MaxErrors = %d, want 50", cfg.Parser.MaxErrors)
	}
	if cfg.Output.Format != FormatTree {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, FormatTree)
	}
	if cfg.Output.Color {
		t.Error("Output.Color should default to false")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		maxErrors int
		format    string
		color     bool
		level     slog.Level
	}{
		{
			name:      "empty file",
			content:   "",
			maxErrors: 50,
			format:    FormatTree,
			level:     slog.LevelInfo,
		},
		{
			name: "all sections",
			content: `
[parser]
max_errors = 10

[output]
format = "cool"
color = true

[log]
level = "debug"
`,
			maxErrors: 10,
			format:    FormatCool,
			color:     true,
			level:     slog.LevelDebug,
		},
		{
			name: "partial",
			content: `
[output]
format = "yaml"
`,
			maxErrors: 50,
			format:    FormatYAML,
			level:     slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if cfg.Parser.MaxErrors != tt.maxErrors {
				t.Errorf("Parser.MaxErrors = %d, want %d", cfg.Parser.MaxErrors, tt.maxErrors)
			}
			if cfg.Output.Format != tt.format {
				t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, tt.format)
			}
			if cfg.Output.Color != tt.color {
				t.Errorf("Output.Color = %v, want %v", cfg.Output.Color, tt.color)
			}

			level, err := cfg.SlogLevel()
			if err != nil {
				t.Fatalf("SlogLevel() error = %v", err)
			}
			if level != tt.level {
				t.Errorf("SlogLevel() = %v, want %v", level, tt.level)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Parser.MaxErrors != 50 {
		t.Errorf("Parser.MaxErrors = %d, want 50", cfg.Parser.MaxErrors)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != FormatTree {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, FormatTree)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[parser\nmax_errors = 1"},
		{"unknown format", "[output]\nformat = \"json\""},
		{"negative max errors", "[parser]\nmax_errors = -1"},
		{"bad log level", "[log]\nlevel = \"loud\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestValidate_MaxErrors(t *testing.T) {
	for _, maxErrors := range []int{0, -3} {
		cfg := Default()
		cfg.Parser.MaxErrors = maxErrors

		err := cfg.Validate()
		if err == nil {
			t.Errorf("Validate() accepted max_errors = %d", maxErrors)
		}
	}

	cfg := Default()
	cfg.Parser.MaxErrors = 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
