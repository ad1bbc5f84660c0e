// Package config loads scripref settings from a TOML file.
//
// A config file looks like:
//
//	catalog    = "/usr/share/scripref/catalog.xml.xz"
//	cache_size = 512
//	log_level  = "info"
//	log_format = "json"
//
// Every key is optional. Command-line flags override file values.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/internal/logging"
)

// Config holds the settings read from a config file.
type Config struct {
	// Catalog is the path of an XML, XML.xz or SQLite book catalog.
	// Empty selects the built-in catalog.
	Catalog string `toml:"catalog"`

	// CacheSize bounds the parse cache. Zero disables caching.
	CacheSize int `toml:"cache_size"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		CacheSize: 256,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/scripref/config.toml, falling back to
// ~/.config/scripref/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "scripref", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	return filepath.Join(home, ".config", "scripref", "config.toml"), nil
}

// Load reads the config file at path on top of Default. A missing file is
// not an error. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), &errors.ParseError{Input: path, Message: "invalid config file", Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.CacheSize < 0 {
		return errors.NewInvalidRange(fmt.Sprint(c.CacheSize), "cache_size must not be negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return errors.NewInvalidInput(err.Error())
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return errors.NewInvalidInput(err.Error())
	}
	return nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrapf(err, "create config directory for %s", path)
	}
	return os.WriteFile(path, data, 0o600)
}
