package main

import (
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/scripref/internal/config"
	"github.com/FocuswithJustin/scripref/internal/logging"
)

// configResolver supplies flag values from the TOML config file for flags
// given neither on the command line nor through their environment variable.
func configResolver() kong.Resolver {
	var (
		once    sync.Once
		cfg     config.Config
		loadErr error
	)

	return kong.ResolverFunc(func(kctx *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		switch flag.Name {
		case "catalog", "cache-size", "log-level", "log-format":
		default:
			return nil, nil
		}
		for _, env := range flag.Envs {
			if _, ok := os.LookupEnv(env); ok {
				return nil, nil
			}
		}

		once.Do(func() {
			cfg, loadErr = loadConfig(kctx)
		})
		if loadErr != nil {
			return nil, loadErr
		}

		switch flag.Name {
		case "catalog":
			if cfg.Catalog == "" {
				return nil, nil
			}
			return cfg.Catalog, nil
		case "cache-size":
			return strconv.Itoa(cfg.CacheSize), nil
		case "log-level":
			return cfg.LogLevel, nil
		default:
			return cfg.LogFormat, nil
		}
	})
}

// loadConfig reads the file named by --config, or the default path.
func loadConfig(kctx *kong.Context) (config.Config, error) {
	var path string
	for _, f := range kctx.Flags() {
		if f.Name == "config" {
			path, _ = kctx.FlagValue(f).(string)
		}
	}
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

// initLogging configures the global logger from the resolved flags.
func (c *CLI) initLogging(stderr io.Writer) error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(level, format)
	logging.SetOutput(stderr)
	return nil
}
