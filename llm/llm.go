package llm

import (
	"fmt"
	"os"
)

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption  OptionType = "model"
	APITimeoutOption OptionType = "api_timeout"
	BaseURLOption    OptionType = "base_url"
	RefererOption    OptionType = "referer"
	TitleOption      OptionType = "title"
)

// Option represents a generic configuration option for the client
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to override the completions endpoint
func WithBaseURL(url string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: url,
	}
}

// WithReferer creates an option to set the HTTP-Referer attribution header
func WithReferer(url string) Option {
	return Option{
		Type:  RefererOption,
		Value: url,
	}
}

// WithTitle creates an option to set the X-Title attribution header
func WithTitle(title string) Option {
	return Option{
		Type:  TitleOption,
		Value: title,
	}
}

// APIKey returns the OpenRouter bearer token from the environment.
func APIKey() (string, error) {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("OPENROUTER_API_KEY environment variable is not set")
	}
	return apiKey, nil
}
