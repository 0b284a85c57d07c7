package config

const (
	defaultConfigPath     = "~/.config/atmosprobe/config.toml"
	defaultCacheDir       = "~/.cache/atmosprobe"
	defaultLogDir         = "~/.local/share/atmosprobe/logs"
	defaultFFprobeBinary  = "ffprobe"
	defaultFFprobeTimeout = 60
	defaultScanWorkers    = 4
	defaultCacheEnabled   = true
	defaultCacheMaxAge    = 90
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	cacheFileName         = "probe.db"
	maxScanWorkers        = 64
)

var defaultExtensions = []string{".mkv", ".mka", ".mp4", ".m4a", ".m2ts", ".ts", ".eac3", ".ec3", ".thd", ".mlp"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		FFprobe: FFprobe{
			Binary:         defaultFFprobeBinary,
			TimeoutSeconds: defaultFFprobeTimeout,
		},
		Scan: Scan{
			Workers:    defaultScanWorkers,
			Extensions: append([]string(nil), defaultExtensions...),
		},
		Cache: Cache{
			Enabled:    defaultCacheEnabled,
			MaxAgeDays: defaultCacheMaxAge,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
