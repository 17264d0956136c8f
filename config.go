package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the complete application configuration
type Config struct {
	Flights FlightsConfig `toml:"flights"` // AirLabs schedules API
	Weather WeatherConfig `toml:"weather"` // WeatherAPI.com current conditions
	HTTP    HTTPConfig    `toml:"http"`    // Shared HTTP client settings
	Data    DataConfig    `toml:"data"`    // Reference data overrides
	Export  ExportConfig  `toml:"export"`  // HTML export settings
	Logging LoggingConfig `toml:"logging"` // Diagnostic logging
}

// FlightsConfig contains flight schedule API settings
type FlightsConfig struct {
	BaseURL           string  `toml:"base_url"`
	APIKey            string  `toml:"api_key"`             // Overridden by FLIGHT_KEY
	RequestsPerSecond float64 `toml:"requests_per_second"` // 0 means unlimited
}

// WeatherConfig contains weather API settings
type WeatherConfig struct {
	BaseURL           string  `toml:"base_url"`
	APIKey            string  `toml:"api_key"`             // Overridden by WEATHER_KEY
	RequestsPerSecond float64 `toml:"requests_per_second"` // 0 means unlimited
}

// HTTPConfig contains settings shared by both API clients
type HTTPConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// DataConfig points at replacement reference files. Empty paths use the embedded copies.
type DataConfig struct {
	AirportsPath  string `toml:"airports_path"`
	CountriesPath string `toml:"countries_path"`
}

// ExportConfig contains HTML export settings
type ExportConfig struct {
	Dir string `toml:"dir"`
}

// LoggingConfig contains diagnostic logging settings
type LoggingConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn" or "error"
	Format string `toml:"format"` // "console" or "json"
	Output string `toml:"output"` // "stderr", "stdout" or a file path
}

const (
	flightKeyEnv  = "FLIGHT_KEY"
	weatherKeyEnv = "WEATHER_KEY"

	defaultConfigPath = "config.toml"
	dotEnvPath        = ".env"
)

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Flights: FlightsConfig{
			BaseURL: "https://airlabs.co/api/v9",
		},
		Weather: WeatherConfig{
			BaseURL: "http://api.weatherapi.com/v1",
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: 15,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
			Output: "stderr",
		},
	}
}

// Load decodes a TOML file on top of the defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

// LoadWithFallback loads the preferred path if given, then config.toml in the working
// directory, then falls back to defaults. API keys are always taken from the environment
// (after loading .env) when set there.
func LoadWithFallback(preferredPath string) (*Config, error) {
	var cfg *Config
	var err error

	switch {
	case preferredPath != "":
		cfg, err = Load(preferredPath)
		if err != nil {
			return nil, err
		}
	case fileExists(defaultConfigPath):
		cfg, err = Load(defaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", defaultConfigPath, err)
		}
	default:
		cfg = DefaultConfig()
	}

	if err := loadDotEnv(dotEnvPath); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	return cfg, nil
}

// loadDotEnv exports the variables in path. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Flights.APIKey = getEnv(flightKeyEnv, c.Flights.APIKey)
	c.Weather.APIKey = getEnv(weatherKeyEnv, c.Weather.APIKey)
}

// Timeout is the per-request HTTP timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// Validate checks the configuration and fills in defaults for empty optional fields
func (c *Config) Validate() error {
	if c.Flights.APIKey == "" {
		return fmt.Errorf("flight API key is required (set %s)", flightKeyEnv)
	}
	if c.Weather.APIKey == "" {
		return fmt.Errorf("weather API key is required (set %s)", weatherKeyEnv)
	}
	if c.Flights.BaseURL == "" {
		return errors.New("flights.base_url must not be empty")
	}
	if c.Weather.BaseURL == "" {
		return errors.New("weather.base_url must not be empty")
	}

	if c.Flights.RequestsPerSecond < 0 || c.Weather.RequestsPerSecond < 0 {
		return errors.New("requests_per_second must not be negative")
	}

	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid http timeout: %d", c.HTTP.TimeoutSeconds)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid log level
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
		// Valid log format
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
