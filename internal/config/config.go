package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Data    DataConfig    `yaml:"data"`
	Log     LogConfig     `yaml:"log"`
	Tickets TicketsConfig `yaml:"tickets"`
}

type DataConfig struct {
	// File is opened before the first prompt when set.
	File string `yaml:"file"`
}

type LogConfig struct {
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

type TicketsConfig struct {
	QRDir       string `yaml:"qr_dir"`
	QRSecret    string `yaml:"qr_secret"`
	UniqueCodes bool   `yaml:"unique_codes"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Dir:   "logs",
			Level: "info",
		},
		Tickets: TicketsConfig{
			UniqueCodes: true,
		},
	}
}

// Load starts from Default, applies the YAML file at path when path is not
// empty, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Data.File = getEnv("BOOKER_DATA_FILE", c.Data.File)
	c.Log.Dir = getEnv("BOOKER_LOG_DIR", c.Log.Dir)
	c.Log.Level = getEnv("BOOKER_LOG_LEVEL", c.Log.Level)
	c.Log.Console = getEnvBool("BOOKER_LOG_CONSOLE", c.Log.Console)
	c.Tickets.QRDir = getEnv("BOOKER_QR_DIR", c.Tickets.QRDir)
	c.Tickets.QRSecret = getEnv("QR_SECRET_KEY", c.Tickets.QRSecret)
	c.Tickets.UniqueCodes = getEnvBool("BOOKER_UNIQUE_CODES", c.Tickets.UniqueCodes)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
