package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"buzzboard/internal/questionnaire"
	"buzzboard/internal/recommend"
)

// Config holds all buzzboard configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Questionnaire schema source
	Schema SchemaConfig `yaml:"schema"`

	// Recommendation parameters
	Derivation DerivationConfig `yaml:"derivation"`

	Logging LoggingConfig `yaml:"logging"`

	UI UIConfig `yaml:"ui"`
}

// SchemaConfig points at an optional YAML questionnaire file. Empty means the
// built-in questionnaire.
type SchemaConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	rules := recommend.DefaultRules()
	return &Config{
		Name:    "buzzboard",
		Version: "1.0.0",

		Derivation: DerivationConfig{
			BudgetBands:      rules.BudgetBands,
			DefaultBudget:    rules.DefaultBudget,
			ReturnMultiplier: rules.ReturnMultiplier,
			ChannelRules:     rules.ChannelRules,
			DefaultChannel:   rules.DefaultChannel,
			DurationBands:    rules.DurationBands,
			DefaultMonths:    rules.DefaultMonths,
			Baseline:         rules.Baseline,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},

		UI: UIConfig{
			Theme:  "auto",
			Locale: "en-US",
		},
	}
}

// DefaultPath returns ~/.buzzboard/config.yaml, or a relative path when the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".buzzboard", "config.yaml")
	}
	return filepath.Join(home, ".buzzboard", "config.yaml")
}

// Load loads configuration from a YAML file and applies environment overrides.
// A missing file yields the defaults.
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

	if err := cfg.applyEnvOverrides(); err != nil {
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

// envOverrides lists the BUZZBOARD_* variables. Pointers stay nil when the
// variable is unset so loaded values are kept.
type envOverrides struct {
	SchemaPath       *string  `env:"BUZZBOARD_SCHEMA"`
	ReturnMultiplier *float64 `env:"BUZZBOARD_RETURN_MULTIPLIER"`
	DefaultChannel   *string  `env:"BUZZBOARD_DEFAULT_CHANNEL"`
	LogLevel         *string  `env:"BUZZBOARD_LOG_LEVEL"`
	LogFormat        *string  `env:"BUZZBOARD_LOG_FORMAT"`
	LogFile          *string  `env:"BUZZBOARD_LOG_FILE"`
	Theme            *string  `env:"BUZZBOARD_THEME"`
	Locale           *string  `env:"BUZZBOARD_LOCALE"`
}

// applyEnvOverrides overlays BUZZBOARD_* environment variables.
func (c *Config) applyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	setString(&c.Schema.Path, o.SchemaPath)
	setString(&c.Derivation.DefaultChannel, o.DefaultChannel)
	setString(&c.Logging.Level, o.LogLevel)
	setString(&c.Logging.Format, o.LogFormat)
	setString(&c.Logging.File, o.LogFile)
	setString(&c.UI.Theme, o.Theme)
	setString(&c.UI.Locale, o.Locale)
	if o.ReturnMultiplier != nil {
		c.Derivation.ReturnMultiplier = *o.ReturnMultiplier
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	level := strings.ToLower(c.Logging.Level)
	validLevel := level == ""
	for _, l := range ValidLogLevels {
		if level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	switch c.UI.Theme {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid theme: %s (valid: auto, light, dark)", c.UI.Theme)
	}

	return c.Rules().Validate()
}

// LoadSchema returns the configured questionnaire, validated.
func (c *Config) LoadSchema() (questionnaire.Schema, error) {
	if c.Schema.Path == "" {
		return questionnaire.DefaultSchema(), nil
	}
	return LoadSchemaFile(c.Schema.Path)
}

// LoadSchemaFile reads a YAML list of steps.
func LoadSchemaFile(path string) (questionnaire.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	var schema questionnaire.Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return schema, nil
}
