// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds the application configuration. Values merge in order: built-in
// defaults, then the JSON config file, then environment variables.
type Config struct {
	Port          int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	APIKey        string `json:"api_key,omitempty"`
	MaxFileSizeMB int    `json:"max_file_size_mb,omitempty" validate:"omitempty,min=1,max=100"`
	// AllowedExtensions lists the upload extensions accepted by the server,
	// dot included.
	AllowedExtensions []string `json:"allowed_extensions,omitempty" validate:"omitempty,dive,startswith=."`
	LogLevel          string   `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Port:              8000,
		MaxFileSizeMB:     10,
		AllowedExtensions: []string{".pdf", ".txt", ".html"},
		LogLevel:          "info",
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
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

// FromEnv returns a config populated from environment variables. Unset
// variables leave their field at the zero value so merging works.
func FromEnv() Config {
	cfg := Config{
		APIKey:   os.Getenv("GEMINI_API_KEY"),
		LogLevel: os.Getenv("LOG_LEVEL"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		}
	}
	if size := os.Getenv("MAX_FILE_SIZE_MB"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			cfg.MaxFileSizeMB = n
		}
	}
	if exts := os.Getenv("ALLOWED_EXTENSIONS"); exts != "" {
		for _, ext := range strings.Split(exts, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				cfg.AllowedExtensions = append(cfg.AllowedExtensions, ext)
			}
		}
	}
	return cfg
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a copy with zero-valued fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.MaxFileSizeMB == 0 {
		result.MaxFileSizeMB = defaults.MaxFileSizeMB
	}
	if len(result.AllowedExtensions) == 0 {
		result.AllowedExtensions = defaults.AllowedExtensions
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	return result
}
