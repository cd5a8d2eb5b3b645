package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding (json, console).
	Format string `mapstructure:"format" default:"json"`
	// File is an optional path that receives a rotated copy of every log line.
	File string `mapstructure:"file" default:""`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb" default:"5"`
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `mapstructure:"max_backups" default:"7"`
	// MaxAgeDays is the number of days a rotated file is kept.
	MaxAgeDays int `mapstructure:"max_age_days" default:"1"`
	// Compress gzips rotated files.
	Compress bool `mapstructure:"compress" default:"false"`
}
