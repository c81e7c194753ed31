package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// OpenAIKey returns the OpenAI API key from the environment.
// API keys never live in the YAML file.
func OpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// GeminiKey returns the Gemini API key from the environment.
func GeminiKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// APIKey returns the key matching the configured summary provider.
func (c *Config) APIKey() string {
	if c.Summary.Provider == "gemini" {
		return GeminiKey()
	}
	return OpenAIKey()
}
