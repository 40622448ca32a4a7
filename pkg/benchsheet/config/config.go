// Package config resolves benchsheet settings from defaults, a YAML file,
// .env files and the environment.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet"
)

// EnvFiles are loaded, when present, before the environment is read.
var EnvFiles = []string{".env", ".env.local"}

// Config holds the resolved settings.
// Fields left unset by the environment keep their file or default value.
type Config struct {
	Input    string `env:"BENCHSHEET_INPUT" yaml:"input" validate:"required"`
	Output   string `env:"BENCHSHEET_OUTPUT" yaml:"output" validate:"required"`
	Sheet    string `env:"BENCHSHEET_SHEET" yaml:"sheet" validate:"required,max=31"`
	SaveAs   string `env:"BENCHSHEET_SAVE_AS" yaml:"save_as"`
	LogLevel string `env:"BENCHSHEET_LOG_LEVEL" yaml:"log_level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	Strict   bool   `env:"BENCHSHEET_STRICT" yaml:"strict"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Input:    benchsheet.DefaultInputPath,
		Output:   benchsheet.DefaultOutputPath,
		Sheet:    benchsheet.DefaultSheetName,
		LogLevel: "info",
	}
}

// LoadEnv loads the env files that exist and returns how many were loaded.
// Variables already set in the process environment win.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}

	if len(existing) == 0 {
		return 0, nil
	}

	return len(existing), godotenv.Load(existing...)
}

// Load resolves settings: defaults, then the YAML file at path (if not
// empty), then env files, then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if _, err := LoadEnv(EnvFiles); err != nil {
		return nil, errors.Wrap(err, "load env files")
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

var validate = validator.New()

// Validate checks required settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Options converts the settings into append options.
func (c *Config) Options() benchsheet.Options {
	return benchsheet.Options{
		InputPath:  c.Input,
		OutputPath: c.Output,
		SheetName:  c.Sheet,
		SaveAs:     c.SaveAs,
		Strict:     c.Strict,
	}
}
