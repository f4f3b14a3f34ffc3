package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	if err := c.normalizeEffectCache(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(DataDirEnv); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = ToolDir()
	}
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}

	c.Paths.AliasFile = strings.TrimSpace(c.Paths.AliasFile)
	if c.Paths.AliasFile == "" {
		c.Paths.AliasFile = defaultAliasFile
	}
	c.Paths.CatalogFile = strings.TrimSpace(c.Paths.CatalogFile)
	if c.Paths.CatalogFile == "" {
		c.Paths.CatalogFile = defaultCatalogFile
	}
	c.Paths.CacheCatalogFile = strings.TrimSpace(c.Paths.CacheCatalogFile)
	if c.Paths.CacheCatalogFile == "" {
		c.Paths.CacheCatalogFile = defaultCacheCatalog
	}
	return nil
}

func (c *Config) normalizeEffectCache() error {
	c.EffectCache.Dir = strings.TrimSpace(c.EffectCache.Dir)
	if c.EffectCache.Dir == "" {
		return nil
	}
	var err error
	if c.EffectCache.Dir, err = expandPath(c.EffectCache.Dir); err != nil {
		return fmt.Errorf("effect_cache.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		return nil
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
