package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRegistryURL = "https://crates.io/api/v1"
	DefaultUserAgent   = "cargoupdate (https://github.com/rios0rios0/cargoupdate)"
	DefaultConcurrency = 16
)

// Settings is the optional configuration file of cargoupdate.
type Settings struct {
	Registry     RegistrySettings `yaml:"registry"`
	Reject       []string         `yaml:"reject"`
	RequireClean bool             `yaml:"require_clean"`
}

// RegistrySettings describes how to reach the package registry.
type RegistrySettings struct {
	URL         string `yaml:"url"`         // Inline or ${ENV_VAR}
	UserAgent   string `yaml:"user_agent"`  // crates.io rejects requests without one
	Concurrency int    `yaml:"concurrency"` // Max simultaneous lookups
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Registry: RegistrySettings{
			URL:         DefaultRegistryURL,
			UserAgent:   DefaultUserAgent,
			Concurrency: DefaultConcurrency,
		},
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and filling unset values with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Registry.URL = expandEnv(settings.Registry.URL)
	settings.Registry.UserAgent = expandEnv(settings.Registry.UserAgent)
	if settings.Registry.URL == "" {
		settings.Registry.URL = DefaultRegistryURL
	}
	if settings.Registry.UserAgent == "" {
		settings.Registry.UserAgent = DefaultUserAgent
	}

	if validateErr := validateSettings(settings); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// LoadSettings loads the config file at path, or the first one found in the
// default locations when path is empty. Missing files yield defaults.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		return NewSettings(path)
	}
	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return DefaultSettings(), nil
	}
	logger.Debugf("Using config file: %s", found)
	return NewSettings(found)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".cargoupdate.yaml",
		".cargoupdate.yml",
		"cargoupdate.yaml",
		"cargoupdate.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func validateSettings(settings *Settings) error {
	if settings.Registry.Concurrency < 1 {
		return fmt.Errorf(
			"registry.concurrency must be at least 1 (got %d)",
			settings.Registry.Concurrency,
		)
	}
	for i, pattern := range settings.Reject {
		if pattern == "" {
			return fmt.Errorf("reject[%d] must not be empty", i)
		}
	}
	return nil
}
