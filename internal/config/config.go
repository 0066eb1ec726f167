// Package config handles loading and validating application configuration.
// It looks for a YAML file in two places (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Unlike a server, the drills need nothing to run: when neither source
// gives a path, the built-in defaults are used and only environment
// variables can override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" validate:"required,oneof=dev staging prod"`

	// CrossCheck re-evaluates every drill as a SQL CASE expression on an
	// in-memory SQLite database and fails the run on any disagreement.
	CrossCheck bool `yaml:"cross_check" env:"CROSS_CHECK"`

	// DrillValues is embedded so cfg.Age, cfg.Password, ... are promoted.
	DrillValues `yaml:"drills"`
}

// DrillValues are the literals each drill checks.
// Nested under drills: in the YAML file.
type DrillValues struct {
	Age        int    `yaml:"age" env:"DRILL_AGE"`
	Number     int    `yaml:"number" env:"DRILL_NUMBER"`
	Password   string `yaml:"password" env:"DRILL_PASSWORD"`
	Num        int    `yaml:"num" env:"DRILL_NUM"`
	IsLoggedIn bool   `yaml:"is_logged_in" env:"DRILL_IS_LOGGED_IN"`
}

// Default returns the configuration the drills were written against.
//
// Defaults are filled in BEFORE reading the file instead of using
// env-default tags: cleanenv applies env-default to any zero field, which
// would silently turn `num: 0` or `is_logged_in: false` back into 10/true.
func Default() Config {
	return Config{
		Env: "dev",
		DrillValues: DrillValues{
			Age:        20,
			Number:     -5,
			Password:   "myPassword123",
			Num:        10,
			IsLoggedIn: true,
		},
	}
}

// Load builds the config from the defaults, the YAML file at path (if any)
// and the environment, then validates it.
// An empty path means "no file": only environment overrides apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		// A clear message beats a cryptic "open: no such file" later.
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
		}

		// ReadConfig parses the YAML onto cfg, then applies env:"..." overrides.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return &cfg, nil
}

// MustLoad resolves the config path, loads it and exits on failure.
//
// Functions prefixed with "Must" are allowed to fatal: if this returns,
// the config is valid.
func MustLoad() *Config {
	configPath, err := resolvePath(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("cannot parse flags: %s", err.Error())
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}

	return cfg
}

// resolvePath picks the config file path: CONFIG_PATH wins, then the
// --config flag parsed from args onto fs. Empty means "no file".
func resolvePath(fs *flag.FlagSet, args []string) (string, error) {
	// ── Source 1: environment variable ───────────────────────────────
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, nil
	}

	// ── Source 2: command-line flag ───────────────────────────────────
	//   go run ./cmd/conditionals --config=config/local.yaml
	flags := fs.String("config", "", "Path to the configuration YAML file")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	return *flags, nil
}

// validate checks all validate:"..." tags on cfg and turns the
// per-field failures into one readable error.
func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	var msgs []string
	for _, e := range errs {
		switch e.ActualTag() {
		case "oneof":
			msgs = append(msgs,
				fmt.Sprintf("field %s must be one of [%s], got %q", e.Field(), e.Param(), e.Value()))
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return errors.New(strings.Join(msgs, ", "))
}
