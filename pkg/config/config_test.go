package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := Config{
		GoogleAPIKey:    "test-key",
		Model:           "gemini-2.5-pro",
		ProfileLocation: filepath.Join(tmpDir, "profile.json"),
		Defaults: DefaultConfig{
			OutputDir: "./test-output",
		},
	}

	data, err := json.MarshalIndent(testConfig, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Test loading the config.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GoogleAPIKey != testConfig.GoogleAPIKey {
		t.Errorf("Expected API key %s, got %s", testConfig.GoogleAPIKey, cfg.GoogleAPIKey)
	}

	if cfg.ProfileLocation != testConfig.ProfileLocation {
		t.Errorf("Expected profile location %s, got %s", testConfig.ProfileLocation, cfg.ProfileLocation)
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := Config{
		GoogleAPIKey:    "file-key",
		ProfileLocation: filepath.Join(tmpDir, "profile.json"),
	}

	data, err := json.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("GOOGLE_API_KEY", "env-key")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GoogleAPIKey != "env-key" {
		t.Errorf("Expected env var to override file key, got %s", cfg.GoogleAPIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name: "valid config",
			config: Config{
				GoogleAPIKey:    "test-key",
				ProfileLocation: "./profile.json",
				Defaults: DefaultConfig{
					OutputDir: "./output",
				},
			},
			wantError: false,
		},
		{
			name: "missing api key",
			config: Config{
				ProfileLocation: "./profile.json",
			},
			wantError: true,
		},
		{
			name: "missing profile location",
			config: Config{
				GoogleAPIKey: "test-key",
			},
			wantError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.wantError && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tc.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateSetsDefaultOutputDir(t *testing.T) {
	cfg := Config{
		GoogleAPIKey:    "test-key",
		ProfileLocation: "./profile.json",
	}

	err := cfg.Validate()
	if err != nil {
		t.Fatalf("Unexpected validation error: %v", err)
	}

	if cfg.Defaults.OutputDir != "./plans" {
		t.Errorf("Expected default output dir ./plans, got %s", cfg.Defaults.OutputDir)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Config{}

	if cfg.GetModel() != "gemini-2.5-pro" {
		t.Errorf("Expected default model gemini-2.5-pro, got %s", cfg.GetModel())
	}
	if cfg.GetMaxAttempts() != 3 {
		t.Errorf("Expected default 3 attempts, got %d", cfg.GetMaxAttempts())
	}
	if cfg.GetBackoff() != 2*time.Second {
		t.Errorf("Expected default 2s backoff, got %s", cfg.GetBackoff())
	}

	cfg.Model = "gemini-2.0-flash"
	cfg.Retry = RetryConfig{MaxAttempts: 5, BackoffSeconds: 10}

	if cfg.GetModel() != "gemini-2.0-flash" {
		t.Errorf("Expected configured model, got %s", cfg.GetModel())
	}
	if cfg.GetMaxAttempts() != 5 {
		t.Errorf("Expected 5 attempts, got %d", cfg.GetMaxAttempts())
	}
	if cfg.GetBackoff() != 10*time.Second {
		t.Errorf("Expected 10s backoff, got %s", cfg.GetBackoff())
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	// A second init must refuse to overwrite.
	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error initializing over existing config")
	}
}
