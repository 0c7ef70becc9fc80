package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort              = 3000
	DefaultConfigFile        = "config.yaml"
	defaultShutdownTimeout   = 10
	defaultReadHeaderTimeout = 5
)

type Config struct {
	Port              int `yaml:"port"`
	ShutdownTimeout   int `yaml:"shutdown_timeout"`
	ReadHeaderTimeout int `yaml:"read_header_timeout"`
}

// Addr returns the listen address for the configured port on all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetAppConfig loads config.yaml from the working directory, if present,
// and applies the PORT environment variable on top of it.
func GetAppConfig() (*Config, error) {
	return LoadConfig(DefaultConfigFile)
}

// LoadConfig reads the config file at path. A missing file is not an error:
// every setting falls back to its default.
func LoadConfig(path string) (*Config, error) {
	var config Config

	configFile, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err == nil {
		if err := yaml.Unmarshal(configFile, &config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// PORT wins over the file, but only when it is an integer
	if port, ok := portFromEnv(); ok {
		config.Port = port
	}

	if config.Port == 0 {
		config.Port = DefaultPort
	}

	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = defaultShutdownTimeout
	}

	if config.ReadHeaderTimeout <= 0 {
		config.ReadHeaderTimeout = defaultReadHeaderTimeout
	}

	return &config, nil
}

func portFromEnv() (int, bool) {
	raw, ok := os.LookupEnv("PORT")
	if !ok || raw == "" {
		return 0, false
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return port, true
}
