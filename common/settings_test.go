package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	settings := WithDefaultSettings()
	if settings.Model != DefaultModel {
		t.Errorf("Expected default model %q, got %q", DefaultModel, settings.Model)
	}
	if settings.MaxLines != 500 {
		t.Errorf("Expected default max lines 500, got %d", settings.MaxLines)
	}
	if settings.APITimeoutSeconds != 30 {
		t.Errorf("Expected default timeout 30, got %d", settings.APITimeoutSeconds)
	}
}

func TestFromYamlFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".diff-explainer.yml")
	content := "model: qwen/qwen-2.5-7b-instruct:free\nmax_lines: 200\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	settings := FromYamlFile(path)
	if settings.Model != "qwen/qwen-2.5-7b-instruct:free" {
		t.Errorf("Expected model from file, got %q", settings.Model)
	}
	if settings.MaxLines != 200 {
		t.Errorf("Expected max lines from file, got %d", settings.MaxLines)
	}
	if settings.APITimeoutSeconds != DefaultAPITimeout {
		t.Errorf("Expected unset timeout to keep its default, got %d", settings.APITimeoutSeconds)
	}
}

func TestFromYamlFileUnreadableFallsBack(t *testing.T) {
	settings := FromYamlFile(filepath.Join(t.TempDir(), "missing.yml"))
	if settings != WithDefaultSettings() {
		t.Errorf("Expected defaults for a missing file, got %+v", settings)
	}
}

func TestFromYamlFileMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".diff-explainer.yml")
	if err := os.WriteFile(path, []byte("model: [unclosed"), 0o600); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	settings := FromYamlFile(path)
	if settings != WithDefaultSettings() {
		t.Errorf("Expected defaults for a malformed file, got %+v", settings)
	}
}
