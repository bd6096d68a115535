package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	AppName string `koanf:"app_name"`
	Log     struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`
	Server struct {
		Address string `koanf:"address"`
	} `koanf:"server"`
	Data struct {
		RegistryFile string   `koanf:"registry_file"`
		ProbePaths   []string `koanf:"probe_paths"`
	} `koanf:"data"`
	Scan struct {
		ChunkSize int `koanf:"chunk_size"`
	} `koanf:"scan"`
}

// DefaultConfig returns the default configuration for iban-phones
func DefaultConfig() *Config {
	cfg := &Config{
		AppName: "iban-phones",
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Server.Address = ":8080"
	cfg.Data.RegistryFile = "data/lista-psri-es.csv"
	cfg.Data.ProbePaths = []string{
		"data/lista-psri-es.csv",
		"lista-psri-es.csv",
	}
	cfg.Scan.ChunkSize = 10000
	return cfg
}

// Load loads the configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Load default values.
	defaultConfig := DefaultConfig()
	if err := k.Load(structs.Provider(defaultConfig, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	// Load from config file if specified.
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, fmt.Errorf("error loading TOML config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error checking config file: %w", err)
		}
	} else {
		commonPaths := []string{
			"./config.toml",
			"./config/config.toml",
			"/etc/iban-phones/config.toml",
		}
		for _, path := range commonPaths {
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
					return nil, fmt.Errorf("error loading TOML config file from %s: %w", path, err)
				}
				break
			}
		}
	}

	// Split env variables by double underscores, lowercase each part, and
	// join with "." to address nested keys.
	callback := func(s string) string {
		s = strings.TrimPrefix(s, "APP_")
		parts := strings.Split(s, "__")
		for i, part := range parts {
			parts[i] = strings.ToLower(part)
		}
		return strings.Join(parts, ".")
	}
	if err := k.Load(env.Provider("APP_", ".", callback), nil); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	// Unmarshal the config into our Config struct.
	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Validate the config.
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

// validateConfig checks required fields.
func validateConfig(config *Config) error {
	if config.Log.Level == "" {
		return errors.New("log level cannot be empty")
	}
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(config.Log.Level)] {
		return errors.New("invalid log level: must be one of debug, info, warn, error")
	}
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(config.Log.Format)] {
		return errors.New("invalid log format: must be text or json")
	}

	if config.Server.Address == "" {
		return errors.New("server address cannot be empty")
	}

	if config.Data.RegistryFile == "" {
		return errors.New("data.registry_file cannot be empty")
	}

	if config.Scan.ChunkSize <= 0 {
		return errors.New("scan chunk_size must be positive")
	}

	return nil
}
