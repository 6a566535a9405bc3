package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/pkg/errors"

	"tripgpt/internal/file"
)

var defaultConfig = Config{
	APIBaseURL:     "http://127.0.0.1:8000",
	RequestTimeout: 60,

	DefaultCity:     "Kolkata",
	DefaultCurrency: "USD",

	PreferencesPath: "~/.tripgpt/preferences.db",
}

// Config holds configuration for the tripgpt tool.
type Config struct {
	// Base URL of the trip-planner API.
	APIBaseURL string `json:"api_base_url"`
	// Request timeout in seconds.
	RequestTimeout int `json:"request_timeout"`

	// City used by the dashboard weather widget when none is given.
	DefaultCity string `json:"default_city"`
	// ISO code used as the converter's base currency.
	DefaultCurrency string `json:"default_currency"`

	// Path of the local preference database.
	PreferencesPath string `json:"preferences_path"`
}

// Parse a configuration file.
func Parse(path string) (*Config, error) {
	path, err := file.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}

	// Fill any field the file does not set with its default.
	if err := mergo.Merge(config, defaultConfig); err != nil {
		return nil, errors.Wrap(err, "merging defaults")
	}

	expandedPreferencesPath, err := file.ExpandPath(config.PreferencesPath)
	if err != nil {
		return nil, errors.Wrap(err, "expanding preferences path")
	}
	config.PreferencesPath = expandedPreferencesPath
	if err := os.MkdirAll(filepath.Dir(config.PreferencesPath), 0755); err != nil {
		return nil, errors.Wrap(err, "creating preferences directory")
	}
	return config, nil
}

// save a configuration file.
func (c *Config) save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	err = os.WriteFile(path, bytes, 0644)
	if err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	// Create the directories.
	dir, _ := filepath.Split(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating folders")
	}

	if err := defaultConfig.save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}
