package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const EnvPrefix = "FOODINV"

type Config struct {
	// Application
	AppName  string `yaml:"APP_NAME" envconfig:"APP_NAME"`
	AppPort  string `yaml:"APP_PORT" envconfig:"APP_PORT"`
	TimeZone string `yaml:"TIME_ZONE" envconfig:"TIME_ZONE"`

	// Logging
	LogLevel  string `yaml:"LOG_LEVEL" envconfig:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT" envconfig:"LOG_FORMAT"`
	LogFile   string `yaml:"LOG_FILE" envconfig:"LOG_FILE"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER" envconfig:"DB_DRIVER"`
	DBHost     string `yaml:"DB_HOST" envconfig:"DB_HOST"`
	DBUser     string `yaml:"DB_USER" envconfig:"DB_USER"`
	DBPassword string `yaml:"DB_PASSWORD" envconfig:"DB_PASSWORD"`
	DBName     string `yaml:"DB_NAME" envconfig:"DB_NAME"`
	DBPort     string `yaml:"DB_PORT" envconfig:"DB_PORT"`
	DBSSLMode  string `yaml:"DB_SSLMODE" envconfig:"DB_SSLMODE"`
	DBPath     string `yaml:"DB_PATH" envconfig:"DB_PATH"`

	// Expiration tracking
	WarningWindowDays int           `yaml:"WARNING_WINDOW_DAYS" envconfig:"WARNING_WINDOW_DAYS"`
	RefreshInterval   time.Duration `yaml:"REFRESH_INTERVAL" envconfig:"REFRESH_INTERVAL"`
	RedisURL          string        `yaml:"REDIS_URL" envconfig:"REDIS_URL"`

	// Accounts
	BcryptCost int `yaml:"BCRYPT_COST" envconfig:"BCRYPT_COST"`

	// Rate limiting
	RateLimitMax    int           `yaml:"RATE_LIMIT_MAX" envconfig:"RATE_LIMIT_MAX"`
	RateLimitWindow time.Duration `yaml:"RATE_LIMIT_WINDOW" envconfig:"RATE_LIMIT_WINDOW"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST" envconfig:"SMTP_HOST"`
	SMTPPort         int    `yaml:"SMTP_PORT" envconfig:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME" envconfig:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL" envconfig:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD" envconfig:"SMTP_AUTH_PASSWORD"`
	DigestRecipient  string `yaml:"DIGEST_RECIPIENT" envconfig:"DIGEST_RECIPIENT"`
}

func DefaultConfig() Config {
	return Config{
		AppName:           "Food Inventory",
		AppPort:           "8080",
		TimeZone:          "UTC",
		LogLevel:          "info",
		LogFormat:         "json",
		DBDriver:          "sqlite",
		DBPort:            "5432",
		DBSSLMode:         "disable",
		DBPath:            "data/food_inventory.db",
		WarningWindowDays: 7,
		BcryptCost:        10,
		RateLimitMax:      10,
		RateLimitWindow:   time.Second,
		SMTPPort:          587,
	}
}

// LoadConfig layers configuration: defaults, then the YAML file at path (if it
// exists), then environment variables. A .env file in the working directory is
// loaded into the environment first. Variables may be given with or without the
// FOODINV_ prefix.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := DefaultConfig()

	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(file, &cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q, expected postgres or sqlite", c.DBDriver)
	}
	if c.WarningWindowDays < 0 {
		return fmt.Errorf("WARNING_WINDOW_DAYS must not be negative")
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("REFRESH_INTERVAL must not be negative")
	}
	return nil
}

func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.DigestRecipient != ""
}
