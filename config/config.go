// Package config collects host settings from a .env file and the process
// environment. Command-line flags in the hosts override what is loaded here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvPrefabsDir = "LANERUNNER_PREFABS_DIR"
	EnvSeed       = "LANERUNNER_SEED"
	EnvDebug      = "LANERUNNER_DEBUG"
	EnvWatch      = "LANERUNNER_WATCH"
)

var ErrInvalidValue = errors.New("config: invalid value")

type Config struct {
	// PrefabsDir overrides the embedded prefabs when set.
	PrefabsDir string
	// Seed fixes spawn placement; zero means seed from the clock.
	Seed  int64
	Debug bool
	// Watch reloads tuning and scripts from PrefabsDir on change.
	Watch bool
}

// Load reads the given .env files (".env" when none are named) into the
// environment and builds a Config from it. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
		log.Printf("config: loaded %s", f)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	var cfg Config
	var errs []error

	cfg.PrefabsDir = strings.TrimSpace(os.Getenv(EnvPrefabsDir))

	if raw, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSeed, raw))
		}
		cfg.Seed = seed
	}

	var err error
	if cfg.Debug, err = boolEnv(EnvDebug); err != nil {
		errs = append(errs, err)
	}
	if cfg.Watch, err = boolEnv(EnvWatch); err != nil {
		errs = append(errs, err)
	}

	if cfg.Watch && cfg.PrefabsDir == "" {
		log.Printf("config: %s set without %s; nothing to watch", EnvWatch, EnvPrefabsDir)
		cfg.Watch = false
	}

	return cfg, errors.Join(errs...)
}

func lookup(key string) (string, bool) {
	raw, ok := os.LookupEnv(key)
	raw = strings.TrimSpace(raw)
	return raw, ok && raw != ""
}

func boolEnv(key string) (bool, error) {
	raw, ok := lookup(key)
	if !ok {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
	}
	return v, nil
}
