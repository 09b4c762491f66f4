// Package config loads and persists the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/chinmay1088/cryptoapis/api"
)

// Default values.
const (
	DefaultDir            = ".cryptoapis"
	DefaultFile           = "config.yml"
	DefaultBlockchain     = string(api.Bitcoin)
	DefaultNetwork        = api.Mainnet
	DefaultTimeoutSeconds = 30
	DefaultLogLevel       = "info"

	// EnvPrefix prefixes the environment variables that override the file,
	// e.g. CRYPTOAPIS_NETWORK or CRYPTOAPIS_LOG_LEVEL.
	EnvPrefix = "CRYPTOAPIS"
	APIKeyEnv = EnvPrefix + "_API_KEY"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config holds the CLI configuration.
type Config struct {
	APIKey         string    `yaml:"api_key" split_words:"true"`
	Blockchain     string    `yaml:"blockchain"`
	Network        string    `yaml:"network"`
	Version        string    `yaml:"version"`
	Host           string    `yaml:"host"`
	TimeoutSeconds int       `yaml:"timeout_seconds" split_words:"true"`
	Log            LogConfig `yaml:"log"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Blockchain:     DefaultBlockchain,
		Network:        DefaultNetwork,
		Version:        api.VersionV1,
		Host:           api.DefaultHost,
		TimeoutSeconds: DefaultTimeoutSeconds,
		Log:            LogConfig{Level: DefaultLogLevel},
	}
}

// DefaultPath returns ~/.cryptoapis/config.yml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultDir, DefaultFile), nil
}

// Load reads the configuration at path over the defaults. A missing file is not
// an error. Non-empty CRYPTOAPIS_* environment variables win over the file.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	var env Config
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	env.APIKey = strings.TrimSpace(env.APIKey)
	cfg.merge(env)
	return cfg, nil
}

// LoadFile reads only the file at path over the defaults, without the
// environment. Use it to rewrite the file so nothing else gets persisted.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	fileBytes, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	default:
		var partial Config
		if err := yaml.Unmarshal(fileBytes, &partial); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
		cfg.merge(partial)
	}
	return cfg, nil
}

// merge copies every non-zero field of other into c
func (c *Config) merge(other Config) {
	if other.APIKey != "" {
		c.APIKey = other.APIKey
	}
	if other.Blockchain != "" {
		c.Blockchain = other.Blockchain
	}
	if other.Network != "" {
		c.Network = other.Network
	}
	if other.Version != "" {
		c.Version = other.Version
	}
	if other.Host != "" {
		c.Host = other.Host
	}
	if other.TimeoutSeconds > 0 {
		c.TimeoutSeconds = other.TimeoutSeconds
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file '%s': %w", path, err)
	}
	return nil
}

// Validate checks the configuration values are usable.
func (c *Config) Validate() error {
	if _, err := c.EndpointConfig(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level (config key: log.level): '%s', must be one of: debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// EndpointConfig builds the api configuration described by c.
func (c *Config) EndpointConfig() (api.EndpointConfig, error) {
	if c.TimeoutSeconds < 0 {
		return api.EndpointConfig{}, fmt.Errorf("timeout seconds (config key: timeout_seconds) cannot be negative")
	}
	blockchain, err := api.ParseBlockchain(c.Blockchain)
	if err != nil {
		return api.EndpointConfig{}, fmt.Errorf("config key blockchain: %w", err)
	}
	cfg, err := api.NewEndpointConfig(c.APIKey, blockchain, c.Network,
		api.WithVersion(c.Version),
		api.WithHost(c.Host),
		api.WithTimeout(time.Duration(c.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		return api.EndpointConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
