// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	configPath        = pflag.String("config", ".", "Directory containing config.toml")
	validLogLevels    = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers    = []string{"sqlite", "postgres"}
	validMailDrivers  = []string{"smtp", "log"}
	defaultMailSender = `"Barkwise Collie" <no-reply@barkwise.com>`
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	// A missing .env file is fine, real environment variables still apply
	_ = godotenv.Load()

	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(*configPath)

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")
	v.BindEnv("app.reset_url", "app_reset_url", "RESET_URL")

	v.BindEnv("host.port", "host_port", "PORT")
	v.BindEnv("host.cors_origins", "host_cors_origins")

	v.BindEnv("database.driver", "database_driver")
	v.BindEnv("database.dsn", "database_dsn", "DATABASE_URL")

	v.BindEnv("jwt.secret", "jwt_secret", "JWT_SECRET")
	v.BindEnv("jwt.ttl", "jwt_ttl")

	v.BindEnv("security.rate_limit", "security_rate_limit")
	v.BindEnv("security.reset_ttl", "security_reset_ttl")
	v.BindEnv("security.reset_cleanup_schedule", "security_reset_cleanup_schedule")
	v.BindEnv("security.argon.memory", "security_argon_memory")
	v.BindEnv("security.argon.iterations", "security_argon_iterations")
	v.BindEnv("security.argon.parallelism", "security_argon_parallelism")

	v.BindEnv("mail.driver", "mail_driver")
	v.BindEnv("mail.host", "mail_host", "EMAIL_HOST")
	v.BindEnv("mail.port", "mail_port", "EMAIL_PORT")
	v.BindEnv("mail.username", "mail_username", "EMAIL_USER")
	v.BindEnv("mail.password", "mail_password", "EMAIL_PASS")
	v.BindEnv("mail.from", "mail_from")

	v.BindEnv("cache.ttl", "cache_ttl")
	v.BindEnv("cache.redis_addr", "cache_redis_addr")
	v.BindEnv("cache.redis_password", "cache_redis_password")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.reset_url", "http://localhost:8080/reset-password")

	v.SetDefault("host.port", 3000)

	v.SetDefault("database.driver", "sqlite")

	v.SetDefault("jwt.ttl", "4h")

	v.SetDefault("security.rate_limit", 5)
	v.SetDefault("security.reset_ttl", "15m")
	v.SetDefault("security.reset_cleanup_schedule", "@every 1h")

	v.SetDefault("mail.driver", "log")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.from", defaultMailSender)

	v.SetDefault("cache.ttl", "0s")

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional, everything can come from the environment
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	return Validate()
}

// Validate checks the loaded values. It is split from Setup so tests can
// run it against values set directly on viper.
func Validate() error {
	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if u, err := url.Parse(v.GetString("app.reset_url")); err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("app.reset_url must be an absolute url")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDBDrivers, v.GetString("database.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("database.driver") == "postgres" && v.GetString("database.dsn") == "" {
		return errors.New("database.dsn is required for postgres")
	}

	if v.GetDuration("jwt.ttl") <= 0 {
		return errors.New("jwt.ttl must be bigger than 0")
	}

	if v.GetDuration("security.reset_ttl") <= 0 {
		return errors.New("security.reset_ttl must be bigger than 0")
	}

	if v.GetInt("security.rate_limit") < 0 {
		return errors.New("security.rate_limit can't be negative")
	}

	if v.GetDuration("cache.ttl") < 0 {
		return errors.New("cache.ttl can't be negative")
	}

	switch v.GetString("mail.driver") {
	case "smtp":
		if v.GetString("mail.host") == "" {
			return errors.New("mail.host is required for the smtp driver")
		}
	case "log":
		fmt.Println("[WARNING]: mail.driver is set to log. Reset emails will only be written to the log")
	}

	if !slices.Contains(validMailDrivers, v.GetString("mail.driver")) {
		return errors.New("invalid mail driver provided")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	return nil
}
