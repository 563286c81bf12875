package config

// Storage backends understood by the storage package.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

const (
	defaultConfigPath  = "~/.config/bookshelf/config.toml"
	projectConfigName  = "bookshelf.toml"
	defaultLibraryPath = "~/.local/share/bookshelf/book_data.json"
	defaultSQLiteName  = "book_data.db"
	defaultBackend     = BackendJSON
	defaultColor       = ColorAuto
	defaultLogFormat   = LogFormatConsole
	defaultLogLevel    = "info"
	defaultLogDir      = "~/.local/share/bookshelf/logs"
	logFileName        = "bookshelf.log"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Library: Library{
			Path:    defaultLibraryPath,
			Backend: defaultBackend,
		},
		Display: Display{
			Color: defaultColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
	}
}
