package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.AliasFile == "" {
		return errors.New("paths.alias_file must be set")
	}
	if c.Paths.CatalogFile == "" {
		return errors.New("paths.catalog_file must be set")
	}
	stores := []struct {
		key  string
		path string
	}{
		{"paths.alias_file", c.AliasPath()},
		{"paths.catalog_file", c.CatalogPath("")},
		{"paths.cache_catalog_file", c.CacheCatalogPath("")},
	}
	for i, a := range stores {
		if filepath.Ext(a.path) == ".lock" {
			return fmt.Errorf("%s must not use the .lock extension", a.key)
		}
		for _, b := range stores[i+1:] {
			if a.path == b.path {
				return fmt.Errorf("%s and %s both resolve to %s", a.key, b.key, a.path)
			}
		}
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.DebounceMS < 0 {
		return errors.New("watch.debounce_ms must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
