package config

const (
	defaultOutputDir  = "~/rimworld-modlists"
	defaultLogDir     = "~/.local/share/rimmodlist/logs"
	defaultHistoryDir = "~/.local/share/rimmodlist"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		History: History{
			Enabled: true,
			Dir:     defaultHistoryDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
