package config

const (
	defaultLogDir        = "~/.local/share/attest/logs"
	defaultHistoryDB     = "~/.local/share/attest/history.db"
	defaultHashAlgorithm = "sha256"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults. Hashing.Workers
// is left at zero, which means one worker per available CPU at compute time.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Hashing: Hashing{
			Algorithm: defaultHashAlgorithm,
			Workers:   0,
		},
		Verify: Verify{
			HistoryEnabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
