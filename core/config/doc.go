// Package config provides configuration management for the home media API.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults are declared on the partial config structs
// through `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port and API key
//   - Database: MySQL (or SQLite) connection details
//   - Log: Logging level, format and optional rotating file
//   - Torrents: transmission-remote invocation, status parser tuning, search API
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
