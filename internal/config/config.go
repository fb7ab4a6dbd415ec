// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DefaultEvalTimeout bounds a single model evaluation call.
const DefaultEvalTimeout = 2 * time.Minute

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Inputs
	Assignment string `json:"assignment,omitempty"` // Path to assignment prompt text file
	Rubric     string `json:"rubric,omitempty"`     // Path to rubric JSON file
	Paper      string `json:"paper,omitempty"`      // Path to student paper text file
	PaperURL   string `json:"paper_url,omitempty"`  // URL to fetch the paper from

	// Services
	APIKey          string `json:"api_key,omitempty"`          // Gemini API key
	Model           string `json:"model,omitempty"`            // Gemini model name
	LanguageToolURL string `json:"languagetool_url,omitempty"` // LanguageTool server base URL

	// Behavior
	EvalTimeoutSeconds int  `json:"eval_timeout_seconds,omitempty"` // Timeout for the model call
	Verbose            bool `json:"verbose,omitempty"`              // Print debug-level logs
}

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
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

// Validate checks that the configuration has valid values. Required fields
// are not checked here; CLI flag validation handles those after merging.
func (c *Config) Validate() error {
	if c.Paper != "" && c.PaperURL != "" {
		return fmt.Errorf("config error: 'paper' and 'paper_url' are mutually exclusive")
	}
	if c.EvalTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'eval_timeout_seconds' must be non-negative")
	}

	for _, path := range []string{c.Assignment, c.Rubric, c.Paper} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flag values win over config file values, which win over
// environment fallbacks.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Assignment == "" {
		result.Assignment = defaults.Assignment
	}
	if result.Rubric == "" {
		result.Rubric = defaults.Rubric
	}
	if result.Paper == "" {
		result.Paper = defaults.Paper
	}
	if result.PaperURL == "" {
		result.PaperURL = defaults.PaperURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.LanguageToolURL == "" {
		result.LanguageToolURL = defaults.LanguageToolURL
	}
	if result.EvalTimeoutSeconds == 0 {
		result.EvalTimeoutSeconds = defaults.EvalTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win.

	return result
}

// EvalTimeout returns the configured evaluation timeout, falling back to
// the default when unset.
func (c *Config) EvalTimeout() time.Duration {
	if c.EvalTimeoutSeconds > 0 {
		return time.Duration(c.EvalTimeoutSeconds) * time.Second
	}
	return DefaultEvalTimeout
}
