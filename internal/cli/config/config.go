// Package config loads the firelink tool configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the firelink configuration, read from firelink.yml.
type Config struct {
	ProjectName string       `mapstructure:"project_name"`
	Schema      SchemaConfig `mapstructure:"schema"`
	Output      OutputConfig `mapstructure:"output"`
}

// SchemaConfig locates the declaration manifest.
type SchemaConfig struct {
	Manifest string `mapstructure:"manifest"`
}

// OutputConfig controls where and how validation results are written.
type OutputConfig struct {
	// GraphPath is where the validated graph export is written
	GraphPath string `mapstructure:"graph_path"`
	// Format is "text" or "json"
	Format string `mapstructure:"format"`
}

// Load reads firelink.yml (or firelink.yaml) from the working directory,
// falling back to defaults when no config file exists. Environment variables
// override file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("schema.manifest", "schema.yml")
	v.SetDefault("output.graph_path", "build/schema.graph.json")
	v.SetDefault("output.format", "text")

	v.SetConfigName("firelink")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file - defaults apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig rejects values the commands cannot act on.
func validateConfig(config *Config) error {
	switch config.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", config.Output.Format)
	}
	if config.Schema.Manifest == "" {
		return fmt.Errorf("schema.manifest cannot be empty")
	}
	return nil
}
