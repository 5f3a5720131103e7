// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"awiese/finance-master/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Columns struct {
		Date        string `mapstructure:"date" yaml:"date"`
		ValueDate   string `mapstructure:"value_date" yaml:"value_date"`
		Description string `mapstructure:"description" yaml:"description"`
		Outflow     string `mapstructure:"outflow" yaml:"outflow"`
		Inflow      string `mapstructure:"inflow" yaml:"inflow"`
	} `mapstructure:"columns" yaml:"columns"`

	Clustering struct {
		Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
	} `mapstructure:"clustering" yaml:"clustering"`

	Filter struct {
		ExcludedCategories []string `mapstructure:"excluded_categories" yaml:"excluded_categories"`
	} `mapstructure:"filter" yaml:"filter"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Folders struct {
		Input  string `mapstructure:"input" yaml:"input"`
		Output string `mapstructure:"output" yaml:"output"`
	} `mapstructure:"folders" yaml:"folders"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then FINMASTER_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finance-master")
	v.AddConfigPath(".finance-master")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINMASTER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An unreadable config file is not fatal; defaults and env vars still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Column names as they appear in the bank's export.
	v.SetDefault("columns.date", models.ColumnDate)
	v.SetDefault("columns.value_date", models.ColumnValueDate)
	v.SetDefault("columns.description", models.ColumnDescription)
	v.SetDefault("columns.outflow", models.ColumnOutflow)
	v.SetDefault("columns.inflow", models.ColumnInflow)

	v.SetDefault("clustering.threshold", 0.8)

	v.SetDefault("filter.excluded_categories", []string{models.CategoryInternalTransfer})

	v.SetDefault("rules.file", "categories.yaml")

	v.SetDefault("folders.input", "InputFolder")
	v.SetDefault("folders.output", "OutputFolder")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Clustering.Threshold < 0.0 || config.Clustering.Threshold > 1.0 {
		return fmt.Errorf("clustering.threshold must be between 0.0 and 1.0, got: %f", config.Clustering.Threshold)
	}

	for _, column := range []struct{ name, value string }{
		{"columns.description", config.Columns.Description},
		{"columns.outflow", config.Columns.Outflow},
		{"columns.inflow", config.Columns.Inflow},
	} {
		if strings.TrimSpace(column.value) == "" {
			return fmt.Errorf("%s must not be empty", column.name)
		}
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger from the Config.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
