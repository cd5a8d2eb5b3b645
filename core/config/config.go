package config

import (
	"fmt"
	"reflect"
	"strings"

	"home-media/core/database"
	"home-media/core/logger"
	"home-media/core/server"
	"home-media/feature/torrents"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the catalog database.
	Database database.Config `mapstructure:"database"`
	// Torrents holds configuration for the download manager and search API.
	Torrents torrents.Config `mapstructure:"torrents"`
}

// LoadConfig loads configuration from environment variables and the .env file
// in path, then validates it.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal in production
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("invalid config: database.driver must be mysql or sqlite, got %q", c.Database.Driver)
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid config: log.format must be json or console, got %q", c.Log.Format)
	}

	if c.Torrents.MinColumnGap < 1 {
		return fmt.Errorf("invalid config: torrents.min_column_gap must be at least 1, got %d", c.Torrents.MinColumnGap)
	}
	if c.Torrents.HeaderLines < 0 {
		return fmt.Errorf("invalid config: torrents.header_lines must not be negative, got %d", c.Torrents.HeaderLines)
	}
	return nil
}

// bindValues walks the struct and registers every mapstructure key with its
// `default` tag, nested structs becoming dotted prefixes.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// An empty default still registers the key so AutomaticEnv can fill it
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
