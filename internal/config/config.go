// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/abacus"
)

// Config holds settings shared by every command. Flags override these.
type Config struct {
	// Database is the practice log path.
	Database string `env:"ZHUSUAN_DB" envDefault:"zhusuan.db"`
	// Format selects text or json output.
	Format string `env:"ZHUSUAN_FORMAT" envDefault:"text"`
	// Seed fixes the challenge random source; 0 seeds from the clock.
	Seed uint64 `env:"ZHUSUAN_SEED" envDefault:"0"`
	// Rods is the board width used by board-level commands.
	Rods int `env:"ZHUSUAN_RODS" envDefault:"13"`
}

// Load parses the environment into a Config. Each dotenv file in files is
// read in order; a missing file is skipped. Process environment variables win
// over file values, and later files win over earlier ones.
func Load(files ...string) (Config, error) {
	environment := map[string]string{}
	for _, f := range files {
		vars, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range vars {
			environment[k] = v
		}
	}
	for k, v := range env.ToMap(os.Environ()) {
		environment[k] = v
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges env parsing cannot express.
func (c Config) Validate() error {
	if c.Format != "text" && c.Format != "json" {
		return abacus.NewInputError("ZHUSUAN_FORMAT", "must be text or json, got %q", c.Format)
	}
	if c.Rods <= 0 || c.Rods > abacus.MaxBoardDigits {
		return abacus.NewInputError("ZHUSUAN_RODS", "must be in [1,%d], got %d", abacus.MaxBoardDigits, c.Rods)
	}
	return nil
}
