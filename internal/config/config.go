// Package config loads runtime settings from the environment, an optional
// .env file and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application settings.
type Config struct {
	AppPort        string        `validate:"required"`
	CatalogBaseURL string        `validate:"required,url"`
	CatalogTimeout time.Duration `validate:"gt=0"`
	RabbitMQURL    string        `validate:"omitempty,url"`
	EventsExchange string        `validate:"required"`
	LogLevel       string        `validate:"oneof=trace debug info warn error"`
	LogFormat      string        `validate:"oneof=console json"`
	AllowOrigins   string        `validate:"required"`
	ConfigFile     string
}

var validate = validator.New()

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("CATALOG_BASE_URL", "http://localhost:8001/api")
	v.SetDefault("CATALOG_TIMEOUT", "10s")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("EVENTS_EXCHANGE", "stylecurator.events")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("ALLOW_ORIGINS", "*")
	v.SetDefault("CONFIG_FILE", "")
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads the configuration into v. Environment variables override the
// config file, which overrides the defaults.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:        v.GetString("APP_PORT"),
		CatalogBaseURL: v.GetString("CATALOG_BASE_URL"),
		CatalogTimeout: v.GetDuration("CATALOG_TIMEOUT"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		EventsExchange: v.GetString("EVENTS_EXCHANGE"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:      strings.ToLower(v.GetString("LOG_FORMAT")),
		AllowOrigins:   v.GetString("ALLOW_ORIGINS"),
		ConfigFile:     v.GetString("CONFIG_FILE"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// EventsEnabled reports whether interaction events should be published.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}

// HumanReadableLogs reports whether logs go to the console writer.
func (c *Config) HumanReadableLogs() bool {
	return c.LogFormat != "json"
}

// Watch reloads the configuration whenever the config file changes and hands
// each valid result to onChange. Invalid edits are reported to onError and
// otherwise ignored. It does nothing when no config file is in use.
func Watch(v *viper.Viper, onChange func(*Config), onError func(error)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := fromViper(v)
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reloading %s: %w", e.Name, err))
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}
