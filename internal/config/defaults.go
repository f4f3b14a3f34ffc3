package config

const (
	defaultConfigPath   = "~/.config/draftscan/config.toml"
	projectConfigName   = "draftscan.toml"
	defaultAliasFile    = "effect_alias.json"
	defaultCatalogFile  = "effect_video_catalog.json"
	defaultCacheCatalog = "effect_catalog.json"
	defaultHistoryFile  = "draftscan_history.db"
	defaultDebounceMS   = 500
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"

	// DataDirEnv overrides paths.data_dir when set.
	DataDirEnv = "DRAFTSCAN_DATA_DIR"
)

// Default returns a Config populated with repository defaults. DataDir is
// left empty and resolved to the executable directory during Load.
func Default() Config {
	return Config{
		Paths: Paths{
			AliasFile:        defaultAliasFile,
			CatalogFile:      defaultCatalogFile,
			CacheCatalogFile: defaultCacheCatalog,
		},
		Store: Store{
			Lock: true,
		},
		Watch: Watch{
			DebounceMS: defaultDebounceMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
