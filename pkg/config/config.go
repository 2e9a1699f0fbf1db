package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	GoogleAPIKey    string        `json:"google_api_key"`
	Model           string        `json:"model,omitempty"`
	ProfileLocation string        `json:"profile_location"`
	Retry           RetryConfig   `json:"retry,omitempty"`
	Pandoc          PandocConfig  `json:"pandoc,omitempty"`
	Defaults        DefaultConfig `json:"defaults"`
}

// RetryConfig controls how plan generation retries on transient failures.
type RetryConfig struct {
	MaxAttempts    int `json:"max_attempts,omitempty"`
	BackoffSeconds int `json:"backoff_seconds,omitempty"`
}

// PandocConfig holds pandoc-related configuration for PDF export.
type PandocConfig struct {
	TemplatePath string `json:"template_path,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir"`
}

// GetModel returns the configured model or the default if not specified.
func (c *Config) GetModel() (model string) {
	if c.Model != "" {
		model = c.Model
		return model
	}
	model = "gemini-2.5-pro"
	return model
}

// GetMaxAttempts returns the retry budget, defaulting to 3 attempts.
func (c *Config) GetMaxAttempts() (attempts int) {
	if c.Retry.MaxAttempts > 0 {
		attempts = c.Retry.MaxAttempts
		return attempts
	}
	attempts = 3
	return attempts
}

// GetBackoff returns the pause between retry attempts, defaulting to 2s.
func (c *Config) GetBackoff() (backoff time.Duration) {
	if c.Retry.BackoffSeconds > 0 {
		backoff = time.Duration(c.Retry.BackoffSeconds) * time.Second
		return backoff
	}
	backoff = 2 * time.Second
	return backoff
}

func defaultPath() (path string, err error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".running-fit-tech", "config.json")
	return path, err
}

// Load reads configuration from file with environment variable overrides.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = defaultPath()
		if err != nil {
			return cfg, err
		}
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Errorf("config file not found: %s (run 'running-fit-tech init' to create)", path)
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Parse JSON
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	// Override with environment variable if set
	if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
		cfg.GoogleAPIKey = apiKey
	}

	// Validate required fields
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() (err error) {
	if c.GoogleAPIKey == "" {
		err = errors.New("google_api_key is required (set in config or GOOGLE_API_KEY env var)")
		return err
	}

	if c.ProfileLocation == "" {
		err = errors.New("profile_location is required in config")
		return err
	}

	// Set default output_dir if not specified
	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = "./plans"
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = defaultPath()
		if err != nil {
			return err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return err
	}

	defaultConfig := Config{
		GoogleAPIKey:    "AIza...",
		Model:           "gemini-2.5-pro",
		ProfileLocation: filepath.Join(homeDir, ".running-fit-tech", "profile.json"),
		Retry: RetryConfig{
			MaxAttempts:    3,
			BackoffSeconds: 2,
		},
		Defaults: DefaultConfig{
			OutputDir: filepath.Join(homeDir, "Documents", "TrainingPlans"),
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
