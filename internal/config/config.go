// Package config handles reading the vroom configuration file
// (~/.vroom/config.toml) and its environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Animation modes.
const (
	AnimationAlways = "always"
	AnimationAuto   = "auto"
	AnimationNever  = "never"
)

// DefaultPackageManager is the command wrapped when nothing is configured.
const DefaultPackageManager = "npm"

// Environment variables that override the config file.
const (
	EnvConfig         = "VROOM_CONFIG"
	EnvPackageManager = "VROOM_PACKAGE_MANAGER"
	EnvAnimation      = "VROOM_ANIMATION"
)

// Config holds vroom configuration settings.
type Config struct {
	// PackageManager is the command line of the wrapped executable, split
	// into argv with shell-style quoting.
	PackageManager string `toml:"package_manager,omitempty" json:"package_manager,omitempty"`
	// Animation is one of AnimationAlways, AnimationAuto or AnimationNever.
	Animation string `toml:"animation,omitempty" json:"animation,omitempty"`
}

// Path returns the config file path: $VROOM_CONFIG if set, otherwise
// ~/.vroom/config.toml.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".vroom", "config.toml")
	}
	return filepath.Join(home, ".vroom", "config.toml")
}

// Load reads the config from Path, applies environment overrides, and
// validates the result. Unset keys stay empty; see WithDefaults.
//
// The returned Config is always usable. An unreadable file contributes
// nothing, and a key holding an invalid value is cleared; the error lists
// what was dropped while every valid key, from the file or the environment,
// is kept.
func Load() (*Config, error) {
	cfg, loadErr := LoadFrom(Path())
	if loadErr != nil {
		cfg = &Config{}
	}
	cfg.applyEnv()
	return cfg, errors.Join(loadErr, cfg.dropInvalid())
}

// LoadFrom reads the config from a specific path. Returns an empty Config if
// the file does not exist. Supports both TOML and JSON formats (detected by
// file extension; defaults to TOML).
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPackageManager); v != "" {
		c.PackageManager = v
	}
	if v := os.Getenv(EnvAnimation); v != "" {
		c.Animation = v
	}
}

// Validate checks that every set key holds an allowed value.
func (c *Config) Validate() error {
	return c.validateAnimation()
}

func (c *Config) validateAnimation() error {
	switch c.Animation {
	case "", AnimationAlways, AnimationAuto, AnimationNever:
		return nil
	}
	return fmt.Errorf("animation must be %q, %q or %q, got %q", AnimationAlways, AnimationAuto, AnimationNever, c.Animation)
}

// dropInvalid clears each key that fails validation, leaving the others.
func (c *Config) dropInvalid() error {
	err := c.validateAnimation()
	if err != nil {
		c.Animation = ""
	}
	return err
}

// WithDefaults returns a copy of c with unset keys filled in.
func (c *Config) WithDefaults() Config {
	out := *c
	if out.PackageManager == "" {
		out.PackageManager = DefaultPackageManager
	}
	if out.Animation == "" {
		out.Animation = AnimationAlways
	}
	return out
}
