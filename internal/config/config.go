// =============================================================================
// Domains Template Generator - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration.
//
// CONFIGURATION SOURCES (in order of precedence):
//   1. Environment variables (optionally loaded from a .env file)
//   2. The YAML configuration file (config.yaml by default)
//   3. Built-in defaults
//
// The built-in defaults reproduce the standard template paths, so the
// generator works with no configuration file at all. A missing config file is
// therefore not an error; a malformed one is.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is the directory where the template files are written.
	// It is created (including parents) if it does not exist.
	// Default: "client/public/templates"
	OutputDir string `yaml:"output_dir"`

	// XLSXFileName is the file name of the spreadsheet template.
	// Default: "domains-template.xlsx"
	XLSXFileName string `yaml:"xlsx_file_name"`

	// CSVFileName is the file name of the CSV variant.
	// Default: "domains-template.csv"
	CSVFileName string `yaml:"csv_file_name"`

	// SheetName is the name of the single worksheet in the XLSX template.
	// Default: "Domains Template"
	SheetName string `yaml:"sheet_name"`

	// WriteCSV controls whether the CSV variant is written alongside the XLSX.
	// Default: true
	WriteCSV *bool `yaml:"write_csv"`

	// WidthPadding is the number of characters added to each column's computed
	// display width.
	// Default: 2
	WidthPadding int `yaml:"width_padding"`

	// =========================================================================
	// ARCHIVAL SETTINGS
	// =========================================================================

	// ArchiveDir is the directory where the previous template files are copied
	// before being overwritten. Empty disables archival.
	// Default: "" (disabled)
	ArchiveDir string `yaml:"archive_dir"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file at configPath and returns the populated
// Config. A .env file in the working directory is loaded first, if present,
// so environment overrides work in local development the same way they do in
// deployment.
//
// PARAMETERS:
//   - configPath: The path to the YAML configuration file.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file exists but cannot be read or parsed.
func Load(configPath string) (*Config, error) {
	// Load .env if present. Missing is fine: system env vars still apply.
	_ = godotenv.Load()

	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// No config file: run entirely on defaults.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(&config)
	applyEnvOverrides(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.OutputDir == "" {
		config.OutputDir = "client/public/templates"
	}
	if config.XLSXFileName == "" {
		config.XLSXFileName = "domains-template.xlsx"
	}
	if config.CSVFileName == "" {
		config.CSVFileName = "domains-template.csv"
	}
	if config.SheetName == "" {
		config.SheetName = "Domains Template"
	}
	if config.WriteCSV == nil {
		t := true
		config.WriteCSV = &t
	}
	if config.WidthPadding == 0 {
		config.WidthPadding = 2
	}
}

// applyEnvOverrides overlays directory settings from environment variables.
func applyEnvOverrides(config *Config) {
	config.OutputDir = getEnv("TEMPLATEGEN_OUTPUT_DIR", config.OutputDir)
	config.ArchiveDir = getEnv("TEMPLATEGEN_ARCHIVE_DIR", config.ArchiveDir)
}

// validate checks the configuration for values the generator cannot work with.
func validate(config *Config) error {
	if filepath.Ext(config.XLSXFileName) != ".xlsx" {
		return fmt.Errorf("xlsx_file_name must have a .xlsx extension, got %q", config.XLSXFileName)
	}
	if filepath.Ext(config.CSVFileName) != ".csv" {
		return fmt.Errorf("csv_file_name must have a .csv extension, got %q", config.CSVFileName)
	}
	if config.WidthPadding < 0 {
		return fmt.Errorf("width_padding must be non-negative, got %d", config.WidthPadding)
	}
	return nil
}

// =============================================================================
// PATH HELPERS
// =============================================================================

// XLSXPath returns the full path of the spreadsheet template.
func (c *Config) XLSXPath() string {
	return filepath.Join(c.OutputDir, c.XLSXFileName)
}

// CSVPath returns the full path of the CSV variant.
func (c *Config) CSVPath() string {
	return filepath.Join(c.OutputDir, c.CSVFileName)
}

// ArchiveEnabled reports whether previous templates should be archived before
// being overwritten.
func (c *Config) ArchiveEnabled() bool {
	return c.ArchiveDir != ""
}

// getEnv returns the value of the environment variable key, or fallback if it
// is unset or empty.
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
