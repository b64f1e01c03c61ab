// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/mbti-compat/internal/llm"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable, e.g. MBTI_PORT.
const EnvPrefix = "MBTI"

// Config is the runtime configuration. Values come from the environment,
// then an optional JSON file, then CLI flags; later sources win.
type Config struct {
	Port        int     `json:"port,omitempty" envconfig:"PORT" default:"8080"`
	Provider    string  `json:"provider,omitempty" envconfig:"PROVIDER" default:"gemini"`
	Model       string  `json:"model,omitempty" envconfig:"MODEL"`       // Overrides the standard-tier model
	APIKey      string  `json:"api_key,omitempty" envconfig:"API_KEY"`   // Falls back to GEMINI_API_KEY / OPENAI_API_KEY
	BaseURL     string  `json:"base_url,omitempty" envconfig:"BASE_URL"` // OpenAI-compatible endpoint
	Temperature float32 `json:"temperature,omitempty" envconfig:"TEMPERATURE" default:"0.3"`
	MaxTokens   int     `json:"max_tokens,omitempty" envconfig:"MAX_TOKENS" default:"1200"`
	Verbose     bool    `json:"verbose,omitempty" envconfig:"VERBOSE"`
}

// FromEnv reads MBTI_* variables, applying the struct defaults.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// MergeWithDefaults returns a copy of c with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.MaxTokens == 0 {
		result.MaxTokens = defaults.MaxTokens
	}
	// Bools cannot distinguish unset from false; either source may enable verbose.
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// ResolveAPIKey fills APIKey from the provider's conventional variable when unset.
func (c *Config) ResolveAPIKey() {
	if c.APIKey != "" {
		return
	}
	switch llm.Provider(c.Provider) {
	case llm.ProviderOpenAI:
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	default:
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// Validate checks that the configuration has valid values.
// A missing API key is not an error here; commands that call the
// generator check it themselves.
func (c *Config) Validate() error {
	switch llm.Provider(c.Provider) {
	case llm.ProviderGemini, llm.ProviderOpenAI:
	default:
		return fmt.Errorf("config error: unknown provider %q (want gemini or openai)", c.Provider)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("config error: 'max_tokens' must be non-negative")
	}
	return nil
}

// LLMConfig builds the client configuration for the selected provider.
func (c *Config) LLMConfig() *llm.Config {
	out := llm.ConfigFor(llm.Provider(c.Provider))
	if c.Model != "" {
		out = out.WithModel(llm.TierStandard, c.Model)
	}
	out.BaseURL = c.BaseURL
	out.Temperature = c.Temperature
	out.MaxOutputTokens = int32(c.MaxTokens)
	return out
}
