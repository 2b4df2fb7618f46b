package common

import (
	"os"

	"github.com/FyefoxxM/diff-explainer/logger"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultModel is OpenRouter's free Llama 3.2 3B tier.
	DefaultModel = "meta-llama/llama-3.2-3b-instruct:free"
	// DefaultMaxLines caps how much of the diff is sent to the model.
	DefaultMaxLines = 500
	// DefaultAPITimeout is the overall request timeout in seconds.
	DefaultAPITimeout = 30
)

// Settings holds per-repository defaults for the explainer. Flags always win
// over the settings file, which wins over the built-in defaults.
type Settings struct {
	Model             string `yaml:"model"`
	MaxLines          int    `yaml:"max_lines"`
	APITimeoutSeconds int    `yaml:"api_timeout_seconds"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Model:             DefaultModel,
		MaxLines:          DefaultMaxLines,
		APITimeoutSeconds: DefaultAPITimeout,
	}
}

// WithYamlFile looks for a settings file in the working directory and merges
// it over the defaults. A missing or unreadable file is not an error.
func WithYamlFile() Settings {
	var filePath string
	for _, name := range []string{".diff-explainer.yml", ".diff-explainer.yaml"} {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		logger.Debug("No settings file found, using defaults")
		return WithDefaultSettings()
	}
	return FromYamlFile(filePath)
}

// FromYamlFile merges the settings file at path over the defaults. Unset keys
// keep their default values.
func FromYamlFile(path string) Settings {
	settings := WithDefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("Could not read settings file %s: %v", path, err)
		return settings
	}

	var fileSettings Settings
	if err := yaml.Unmarshal(data, &fileSettings); err != nil {
		logger.Warnf("Could not parse settings file %s: %v", path, err)
		return settings
	}

	if fileSettings.Model != "" {
		settings.Model = fileSettings.Model
	}
	if fileSettings.MaxLines > 0 {
		settings.MaxLines = fileSettings.MaxLines
	}
	if fileSettings.APITimeoutSeconds > 0 {
		settings.APITimeoutSeconds = fileSettings.APITimeoutSeconds
	}

	logger.Debugf("Loaded settings from %s", path)
	return settings
}
