package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"krishisakha/internal/sample"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all Krishi-Sakha configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Terminal presentation
	UI UIConfig `yaml:"ui"`

	// Simulated analysis timings
	Analysis AnalysisConfig `yaml:"analysis"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// AnalysisConfig sets the wizard delays as duration strings ("1.5s").
type AnalysisConfig struct {
	StepDelay   string `yaml:"step_delay"`
	RevealDelay string `yaml:"reveal_delay"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "Krishi-Sakha",
		Version: "1.0.0",

		UI: *DefaultUIConfig(),

		Analysis: AnalysisConfig{
			StepDelay:   "1.5s",
			RevealDelay: "1s",
		},

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
		},
	}
}

// DefaultConfigPath returns <workspace>/.sakha/config.yaml.
func DefaultConfigPath(workspace string) string {
	return filepath.Join(workspace, ".sakha", "config.yaml")
}

// FindWorkspaceRoot walks up from the working directory looking for a .sakha
// directory. If none is found, returns the current working directory.
func FindWorkspaceRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	originalDir := dir
	for {
		if info, err := os.Stat(filepath.Join(dir, ".sakha")); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return originalDir, nil
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// YAML renders the configuration as it would be saved.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SAKHA_THEME"); v != "" {
		c.UI.Theme = strings.ToLower(v)
	}
	if os.Getenv("SAKHA_DARK_MODE") == "1" {
		c.UI.Theme = ThemeDark
	}
	if v := os.Getenv("SAKHA_LANGUAGE"); v != "" {
		c.UI.Language = v
	}
	if v := os.Getenv("SAKHA_STEP_DELAY"); v != "" {
		c.Analysis.StepDelay = v
	}
	if v := os.Getenv("SAKHA_REVEAL_DELAY"); v != "" {
		c.Analysis.RevealDelay = v
	}
	if os.Getenv("SAKHA_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
}

// GetStepDelay returns the wizard step delay as a duration.
func (c *Config) GetStepDelay() time.Duration {
	d, err := time.ParseDuration(c.Analysis.StepDelay)
	if err != nil || d <= 0 {
		return 1500 * time.Millisecond
	}
	return d
}

// GetRevealDelay returns the wizard reveal delay as a duration.
func (c *Config) GetRevealDelay() time.Duration {
	d, err := time.ParseDuration(c.Analysis.RevealDelay)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// GetLanguage returns the configured farmer-screen language.
func (c *Config) GetLanguage() sample.Language {
	lang, err := sample.ParseLanguage(c.UI.Language)
	if err != nil {
		return sample.English
	}
	return lang
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !isValid(c.UI.Theme, ValidThemes) {
		return fmt.Errorf("%w: theme %q (valid: %v)", ErrInvalidConfig, c.UI.Theme, ValidThemes)
	}
	if !isValid(c.UI.StartTab, ValidTabs) {
		return fmt.Errorf("%w: start_tab %q (valid: %v)", ErrInvalidConfig, c.UI.StartTab, ValidTabs)
	}
	if _, err := sample.ParseLanguage(c.UI.Language); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for name, raw := range map[string]string{
		"step_delay":   c.Analysis.StepDelay,
		"reveal_delay": c.Analysis.RevealDelay,
	} {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%w: %s %q: %v", ErrInvalidConfig, name, raw, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidConfig, name, raw)
		}
	}
	return nil
}

func isValid(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}
