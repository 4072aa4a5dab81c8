package config

const (
	defaultOutputDir   = "~/.local/share/docpatch/output"
	defaultJournalPath = "~/.local/share/docpatch/journal.db"
	defaultLogDir      = "~/.local/share/docpatch/logs"
	defaultMediaPrefix = "word/media/"
	defaultJPEGQuality = 95
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:   defaultOutputDir,
			JournalPath: defaultJournalPath,
			LogDir:      defaultLogDir,
		},
		Replace: Replace{
			MediaPrefix:    defaultMediaPrefix,
			JPEGQuality:    defaultJPEGQuality,
			JournalEnabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
