package torrents

import "time"

// Config holds configuration for the download manager and the search API.
type Config struct {
	// Binary is the transmission-remote executable.
	Binary string `mapstructure:"binary" default:"transmission-remote"`
	// Host is the optional host:port of the transmission daemon.
	Host string `mapstructure:"host"`
	// Auth is passed as --auth user:password when set.
	Auth string `mapstructure:"auth"`
	// DownloadDir is where added torrents are stored.
	DownloadDir string `mapstructure:"download_dir" default:"/mnt/ext1/torrents"`
	// TimeoutSeconds bounds every invocation of the binary.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// SearchURL is the base URL of the torrent search API. Empty disables search.
	SearchURL string `mapstructure:"search_url"`
	// SearchAttempts is how many times a failing search is tried.
	SearchAttempts uint `mapstructure:"search_attempts" default:"3"`
	// HeaderLines is how many leading non-blank lines of the listing are skipped.
	HeaderLines int `mapstructure:"header_lines" default:"0"`
	// MinColumnGap is the minimum run of whitespace that separates two columns.
	MinColumnGap int `mapstructure:"min_column_gap" default:"2"`
}

// Timeout returns the per-command timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ParserOptions returns the listing parser settings.
func (c Config) ParserOptions() ParserOptions {
	return ParserOptions{HeaderLines: c.HeaderLines, MinColumnGap: c.MinColumnGap}
}
