// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	TokenKind           string        `mapstructure:"TOKEN_KIND"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	Environment         string        `mapstructure:"GO_ENV"`
	RedisAddress        string        `mapstructure:"REDIS_ADDRESS"`
	RateCacheTTL        time.Duration `mapstructure:"RATE_CACHE_TTL"`
	ISOMinorUnits       bool          `mapstructure:"ISO_MINOR_UNITS"`
	DefaultLocale       string        `mapstructure:"DEFAULT_LOCALE"`
	ExportRateLimit     int           `mapstructure:"EXPORT_RATE_LIMIT"`
	ExportRateWindow    time.Duration `mapstructure:"EXPORT_RATE_WINDOW"`
}

// IsProduction reports whether the application runs in production.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("TOKEN_KIND", "paseto")
	v.SetDefault("ACCESS_TOKEN_DURATION", 15*time.Minute)
	v.SetDefault("RATE_CACHE_TTL", 5*time.Minute)
	v.SetDefault("ISO_MINOR_UNITS", false)
	v.SetDefault("DEFAULT_LOCALE", "en-US")
	v.SetDefault("EXPORT_RATE_LIMIT", 10)
	v.SetDefault("EXPORT_RATE_WINDOW", time.Minute)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
