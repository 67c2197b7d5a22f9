package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"keyword-soup/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Keyword soup specifics
	Suggest    SuggestConfig
	Categories CategoriesConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SuggestConfig configures the upstream suggestion service.
type SuggestConfig struct {
	APIURL       string
	ClientFormat string // toolbar (XML) or firefox (JSON)
	Language     string
	UserAgent    string
	Timeout      time.Duration
	// MaxRetries is read but not acted on: a failed query contributes
	// nothing to the soup and is never retried.
	MaxRetries  int
	Concurrency int
}

type CategoriesConfig struct {
	File string // optional YAML file; empty means the built-in table
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Suggestion service
	cfg.Suggest.APIURL = v.GetString("suggest.api_url")
	cfg.Suggest.ClientFormat = v.GetString("suggest.client_format")
	cfg.Suggest.Language = v.GetString("suggest.language")
	cfg.Suggest.UserAgent = v.GetString("suggest.user_agent")
	cfg.Suggest.Timeout = v.GetDuration("suggest.timeout")
	cfg.Suggest.MaxRetries = v.GetInt("suggest.max_retries")
	cfg.Suggest.Concurrency = v.GetInt("suggest.concurrency")

	// Categories
	cfg.Categories.File = v.GetString("categories.file")

	applyProfile(cfg)

	if err := validateSuggestConfig(&cfg.Suggest); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("suggest.api_url", "https://suggestqueries.google.com/complete/search")
	v.SetDefault("suggest.client_format", "toolbar")
	v.SetDefault("suggest.timeout", "10s")
	v.SetDefault("suggest.max_retries", 2)
	v.SetDefault("suggest.concurrency", 1) // sequential, one query at a time
}

// applyProfile fills the gin and logger modes left unset from the
// environment profile.
func applyProfile(cfg *Config) {
	prod := model.IsProduction(cfg.Environment.Name)

	if cfg.HTTPServer.Mode == "" {
		cfg.HTTPServer.Mode = "debug"
		if prod {
			cfg.HTTPServer.Mode = "release"
		}
	}
	if cfg.Logger.Mode == "" {
		cfg.Logger.Mode = "development"
		if prod {
			cfg.Logger.Mode = "production"
		}
	}
	if cfg.Logger.Encoding == "" {
		cfg.Logger.Encoding = "console"
		if prod {
			cfg.Logger.Encoding = "json"
		}
	}
}

// validateSuggestConfig validates the suggestion service configuration
func validateSuggestConfig(cfg *SuggestConfig) error {
	if cfg.APIURL == "" {
		return fmt.Errorf("suggest.api_url is required")
	}
	if cfg.ClientFormat != "toolbar" && cfg.ClientFormat != "firefox" {
		return fmt.Errorf("suggest.client_format must be toolbar or firefox, got %q", cfg.ClientFormat)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("suggest.timeout must be positive")
	}
	if cfg.Concurrency < 1 {
		return fmt.Errorf("suggest.concurrency must be at least 1")
	}
	if cfg.Concurrency > 27 {
		cfg.Concurrency = 27
	}
	return nil
}
