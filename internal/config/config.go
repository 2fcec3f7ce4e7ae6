// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults holds the output settings used when no flag or profile overrides them.
type Defaults struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
	Debug   bool   `yaml:"debug"`
	NoColor bool   `yaml:"no_color"`
	Append  bool   `yaml:"append"`
}

// Extraction tunes the field extractors.
type Extraction struct {
	WindowWords     int               `yaml:"window_words"`
	ClauseWords     int               `yaml:"clause_words"`
	FoldAccents     bool              `yaml:"fold_accents"`
	PhoneRegion     string            `yaml:"phone_region"`
	EnableNER       bool              `yaml:"enable_ner"`
	CompanySuffixes []string          `yaml:"company_suffixes"`
	StateCodes      map[string]string `yaml:"state_codes"`
	// Fields lists the fields to extract, comma separated, or "all".
	Fields string `yaml:"fields"`
}

// Input controls how documents are read.
type Input struct {
	ValidatePDF bool `yaml:"validate_pdf"`
	MaxPages    int  `yaml:"max_pages"`
}

// Config represents the application configuration
type Config struct {
	Defaults   Defaults           `yaml:"defaults"`
	Extraction Extraction         `yaml:"extraction"`
	Input      Input              `yaml:"input"`
	Profiles   map[string]Profile `yaml:"profiles"`
}

// Profile overrides parts of the configuration by name. Unset fields keep
// the file-level value.
type Profile struct {
	Description string `yaml:"description"`
	Format      string `yaml:"format"`
	Verbose     *bool  `yaml:"verbose"`
	Debug       *bool  `yaml:"debug"`
	NoColor     *bool  `yaml:"no_color"`
	Append      *bool  `yaml:"append"`
	WindowWords int    `yaml:"window_words"`
	ClauseWords int    `yaml:"clause_words"`
	EnableNER   *bool  `yaml:"enable_ner"`
	FoldAccents *bool  `yaml:"fold_accents"`
	ValidatePDF *bool  `yaml:"validate_pdf"`
	Fields      string `yaml:"fields"`
}

// Settings is the effective configuration after a profile is applied.
type Settings struct {
	Defaults   Defaults
	Extraction Extraction
	Input      Input
}

// Default returns the built-in configuration.
func Default() *Config {
	off := false
	return &Config{
		Defaults: Defaults{Format: "csv"},
		Extraction: Extraction{
			WindowWords: 49,
			ClauseWords: 49,
			PhoneRegion: "US",
			EnableNER:   true,
			Fields:      "all",
		},
		Input: Input{ValidatePDF: true, MaxPages: 50},
		Profiles: map[string]Profile{
			"fast": {
				Description: "Pattern-based names only, no PDF structure validation",
				EnableNER:   &off,
				ValidatePDF: &off,
			},
		},
	}
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Fields absent from the file keep their defaults.
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ValidateConfig checks value ranges and table entries.
func ValidateConfig(config *Config) error {
	if config.Extraction.WindowWords < 0 {
		return fmt.Errorf("extraction.window_words must not be negative, got %d", config.Extraction.WindowWords)
	}
	if config.Extraction.ClauseWords < 0 {
		return fmt.Errorf("extraction.clause_words must not be negative, got %d", config.Extraction.ClauseWords)
	}
	if config.Input.MaxPages < 0 {
		return fmt.Errorf("input.max_pages must not be negative, got %d", config.Input.MaxPages)
	}
	if r := config.Extraction.PhoneRegion; r != "" && !isUpperPair(r) {
		return fmt.Errorf("extraction.phone_region must be a two-letter region code, got %q", r)
	}
	for name, code := range config.Extraction.StateCodes {
		if strings.TrimSpace(name) == "" || !isUpperPair(code) {
			return fmt.Errorf("extraction.state_codes: invalid entry %q: %q", name, code)
		}
	}
	for _, s := range config.Extraction.CompanySuffixes {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("extraction.company_suffixes: empty suffix")
		}
	}
	for name, p := range config.Profiles {
		if p.WindowWords < 0 || p.ClauseWords < 0 {
			return fmt.Errorf("profile %s: window sizes must not be negative", name)
		}
	}
	return nil
}

func isUpperPair(s string) bool {
	return len(s) == 2 && s[0] >= 'A' && s[0] <= 'Z' && s[1] >= 'A' && s[1] <= 'Z'
}

// Resolve returns the settings with the named profile applied. An empty
// name applies no profile.
func (c *Config) Resolve(profile string) (Settings, error) {
	s := Settings{Defaults: c.Defaults, Extraction: c.Extraction, Input: c.Input}
	if profile == "" {
		return s, nil
	}
	p := c.GetProfile(profile)
	if p == nil {
		return s, fmt.Errorf("profile '%s' not found. Available profiles: %s", profile, strings.Join(c.ListProfiles(), ", "))
	}

	if p.Format != "" {
		s.Defaults.Format = p.Format
	}
	setBool(&s.Defaults.Verbose, p.Verbose)
	setBool(&s.Defaults.Debug, p.Debug)
	setBool(&s.Defaults.NoColor, p.NoColor)
	setBool(&s.Defaults.Append, p.Append)
	if p.WindowWords > 0 {
		s.Extraction.WindowWords = p.WindowWords
	}
	if p.ClauseWords > 0 {
		s.Extraction.ClauseWords = p.ClauseWords
	}
	setBool(&s.Extraction.EnableNER, p.EnableNER)
	setBool(&s.Extraction.FoldAccents, p.FoldAccents)
	setBool(&s.Input.ValidatePDF, p.ValidatePDF)
	if p.Fields != "" {
		s.Extraction.Fields = p.Fields
	}
	return s, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// FindConfigFile looks for a configuration file in the current directory,
// then under $XDG_CONFIG_HOME (or ~/.config).
func FindConfigFile() string {
	for _, name := range []string{"lien-scan.yaml", "lien-scan.yml", ".lien-scan.yaml", ".lien-scan.yml"} {
		if fileExists(name) {
			return name
		}
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "lien-scan", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the available profile names, sorted
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration
// together with the error.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}
