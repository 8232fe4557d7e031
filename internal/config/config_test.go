// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arena/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Cohort.MinSize != 4 || cfg.Cohort.MaxSize != 5 {
		t.Errorf("cohort bounds should be 4..5, got %d..%d", cfg.Cohort.MinSize, cfg.Cohort.MaxSize)
	}
	if len(cfg.Cohort.Default) != 4 {
		t.Errorf("default cohort should have 4 models, got %d", len(cfg.Cohort.Default))
	}
	if cfg.Output.Format != FormatTable {
		t.Errorf("Output.Format should be %q, got %q", FormatTable, cfg.Output.Format)
	}
	if cfg.Prompt.MaxImageBytes != 5<<20 {
		t.Errorf("MaxImageBytes should be 5 MiB, got %d", cfg.Prompt.MaxImageBytes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.PromptType() != models.PromptText {
		t.Errorf("PromptType() = %q, want text", cfg.PromptType())
	}
}

func TestLoadFrom_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("ARENA_TEST_EXPORT", "/tmp/arena-reports")
	data := `cohort:
  default: [gpt-4o, mistral-large, command-r-plus]
  min_size: 3
prompt:
  default_type: mixed
output:
  format: json
  export_dir: $ARENA_TEST_EXPORT
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Cohort.MinSize != 3 {
		t.Errorf("MinSize = %d, want 3", cfg.Cohort.MinSize)
	}
	if cfg.Cohort.MaxSize != 5 {
		t.Errorf("MaxSize should default to 5, got %d", cfg.Cohort.MaxSize)
	}
	if cfg.PromptType() != models.PromptMultimodal {
		t.Errorf("PromptType() = %q, want multimodal", cfg.PromptType())
	}
	if cfg.Output.ExportDir != "/tmp/arena-reports" {
		t.Errorf("ExportDir = %q, env var not expanded", cfg.Output.ExportDir)
	}
	if cfg.Output.Width != 100 {
		t.Errorf("Width should default to 100, got %d", cfg.Output.Width)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "cohort: [", "parse config"},
		{"min above max", "cohort:\n  min_size: 6\n  max_size: 5\n", "exceeds"},
		{"bad format", "output:\n  format: xml\n", "output.format"},
		{"bad prompt type", "prompt:\n  default_type: audio\n", "prompt.default_type"},
		{"unknown model", "cohort:\n  default: [gpt-4o, hal-9000]\n", "cohort.default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFrom(path)
			if err == nil {
				t.Fatal("LoadFrom() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Output.Format = FormatMarkdown

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if loaded.Output.Format != FormatMarkdown {
		t.Errorf("Format = %q, want markdown", loaded.Output.Format)
	}
}

func TestConfigPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvPath, "/etc/arena.yaml")
	if got := ConfigPath(); got != "/etc/arena.yaml" {
		t.Errorf("ConfigPath() = %q, want env override", got)
	}
}
