package config

const (
	defaultDumpDir       = "~/dumps"
	defaultExportDir     = "~/dumps/export"
	defaultLogDir        = "~/.local/share/umdproc/logs"
	defaultMediaType     = "umd"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultSettleSeconds = 5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DumpDir:   defaultDumpDir,
			ExportDir: defaultExportDir,
			LogDir:    defaultLogDir,
		},
		Processing: Processing{
			MediaType:      defaultMediaType,
			ComputeDigests: false,
		},
		Watch: Watch{
			SettleSeconds: defaultSettleSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
