package config

const (
	// DefaultOutputDir is the directory the last run is stored in
	DefaultOutputDir = "storage"
	// DefaultOutputFile is the file name of the stored last run
	DefaultOutputFile = "test-results"
	// DefaultOutputFormat is the encoding of the stored last run
	DefaultOutputFormat = "json"
	// DefaultHistoryDriver is the database/sql driver used for run history
	DefaultHistoryDriver = "sqlite"
	// DefaultHistoryDSN is the data source of the default history database
	DefaultHistoryDSN = "storage/history.db"
	// DefaultLogLevel is the diagnostics log level
	DefaultLogLevel = "warn"
	// DefaultLogFormat is the diagnostics log encoding
	DefaultLogFormat = "console"
	// EnvPrefix prefixes environment overrides, e.g. UNITLITE_HISTORY_DSN
	EnvPrefix = "UNITLITE"
	// ConfigName is the base name of the optional config file
	ConfigName = ".unitlite"
)

// SupportedFormats are the encodings the last run can be stored in
var SupportedFormats = []string{"json", "yaml"}

// SupportedDrivers are the database/sql drivers run history can use
var SupportedDrivers = []string{"sqlite", "mysql", "postgres"}
