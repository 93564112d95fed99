package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" envconfig:"SERVER"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Conversion ConversionConfig `yaml:"conversion" envconfig:"CONVERSION"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" envconfig:"MAX_UPLOAD_BYTES" default:"33554432"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// ConversionConfig selects where Date Rcvd comes from: the per-document
// report headers (default) or a single operator-supplied date applied to
// every document in a batch.
type ConversionConfig struct {
	UseHeaderDate bool   `yaml:"use_header_date" envconfig:"USE_HEADER_DATE" default:"true"`
	OverrideDate  string `yaml:"override_date" envconfig:"OVERRIDE_DATE"`
}

// RateLimitConfig contains HTTP rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"100"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"50"`
}

// Load loads configuration from environment variables, overlaying a
// config.yaml next to the executable when one exists. Environment values
// take precedence over file values.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("GPIRS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs merges file config under env config; env values win when
// set.
func mergeConfigs(fileCfg, envCfg Config) Config {
	if envCfg.Server.Port == 0 {
		envCfg.Server.Port = fileCfg.Server.Port
	}
	if envCfg.Server.ReadTimeout == 0 {
		envCfg.Server.ReadTimeout = fileCfg.Server.ReadTimeout
	}
	if envCfg.Server.WriteTimeout == 0 {
		envCfg.Server.WriteTimeout = fileCfg.Server.WriteTimeout
	}
	if envCfg.Server.MaxUploadBytes == 0 {
		envCfg.Server.MaxUploadBytes = fileCfg.Server.MaxUploadBytes
	}
	if envCfg.Logging.FilePath == "" {
		envCfg.Logging.FilePath = fileCfg.Logging.FilePath
	}
	if envCfg.Conversion.OverrideDate == "" {
		envCfg.Conversion.OverrideDate = fileCfg.Conversion.OverrideDate
	}
	return envCfg
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}
	if c.Conversion.OverrideDate != "" {
		if _, err := time.Parse("2006-01-02", c.Conversion.OverrideDate); err != nil {
			return fmt.Errorf("invalid override date %q: %w", c.Conversion.OverrideDate, err)
		}
	}
	return nil
}

func getConfigFilePath() string {
	if p := os.Getenv("GPIRS_CONFIG_FILE"); p != "" {
		return p
	}
	return "config.yaml"
}
