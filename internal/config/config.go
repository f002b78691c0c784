package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geange/fsa"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "fsa.yaml"

// Config is the CLI configuration file.
type Config struct {
	LogLevel     string   `yaml:"log_level"`
	InputFormat  string   `yaml:"input_format"`
	OutputFormat string   `yaml:"output_format"`
	Simplify     Simplify `yaml:"simplify"`
}

// Simplify bounds the regex simplifier.
type Simplify struct {
	MaxLength int `yaml:"max_length"`
	MaxPasses int `yaml:"max_passes"`
}

// Default returns the configuration used when no file exists. Empty formats mean "guess from the file
// name" for input and JSON for output.
func Default() Config {
	return Config{
		LogLevel: "info",
		Simplify: Simplify{
			MaxLength: fsa.DefaultMaxLength,
			MaxPasses: fsa.DefaultMaxPasses,
		},
	}
}

// Load reads the configuration at path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Simplify.MaxLength <= 0 || cfg.Simplify.MaxPasses < 0 {
		return cfg, fmt.Errorf("%s: simplify.max_length must be positive and simplify.max_passes not negative", path)
	}
	return cfg, nil
}

// SimplifyOptions converts the simplify section into simplifier options.
func (c Config) SimplifyOptions() []fsa.SimplifyOption {
	return []fsa.SimplifyOption{
		fsa.WithMaxLength(c.Simplify.MaxLength),
		fsa.WithMaxPasses(c.Simplify.MaxPasses),
	}
}
