/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ssargent/promash/pkg/codec"
	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"
)

// Config represents the promash configuration
type Config struct {
	ArchiveDir string  `yaml:"archive_dir"`
	Format     string  `yaml:"format"`
	Server     Server  `yaml:"server"`
	Decode     Decode  `yaml:"decode"`
	Logging    Logging `yaml:"logging"`
}

// Server contains HTTP API configuration
type Server struct {
	Port   int    `yaml:"port"`
	Bind   string `yaml:"bind"`
	APIKey string `yaml:"api_key"`
}

// Decode controls how text fields in recipe files are read
type Decode struct {
	Terminators []int  `yaml:"terminators"`
	Charset     string `yaml:"charset"`
}

// Logging contains logging configuration
type Logging struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Supported values for Decode.Charset
const (
	CharsetWindows1252 = "windows-1252"
	CharsetISO88591    = "iso-8859-1"
	CharsetCP437       = "cp437"
	CharsetRaw         = "raw"
)

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ArchiveDir: "./recipes",
		Format:     "table",
		Server: Server{
			Port:   8080,
			Bind:   "127.0.0.1",
			APIKey: "auto",
		},
		Decode: Decode{
			Terminators: []int{0},
			Charset:     CharsetWindows1252,
		},
		Logging: Logging{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// CodecOptions translates the decode settings into codec options
func (c *Config) CodecOptions() ([]codec.Option, error) {
	var opts []codec.Option

	if len(c.Decode.Terminators) > 0 {
		terminators := make([]byte, 0, len(c.Decode.Terminators))
		for _, t := range c.Decode.Terminators {
			if t < 0 || t > 255 {
				return nil, fmt.Errorf("invalid terminator %d: must be a byte value", t)
			}
			terminators = append(terminators, byte(t))
		}
		opts = append(opts, codec.WithTerminators(terminators...))
	}

	switch strings.ToLower(c.Decode.Charset) {
	case "", CharsetWindows1252:
		opts = append(opts, codec.WithCharset(charmap.Windows1252))
	case CharsetISO88591:
		opts = append(opts, codec.WithCharset(charmap.ISO8859_1))
	case CharsetCP437:
		opts = append(opts, codec.WithCharset(charmap.CodePage437))
	case CharsetRaw:
		opts = append(opts, codec.WithRawText())
	default:
		return nil, fmt.Errorf("unsupported charset %q", c.Decode.Charset)
	}

	return opts, nil
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file holds the API key
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated API key and saves it
func BootstrapConfig(configPath string, archiveDir string) (*Config, error) {
	config := DefaultConfig()
	if archiveDir != "" {
		config.ArchiveDir = archiveDir
	}

	apiKey, err := GenerateSecureKey(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Server.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./promash.yaml"
	}

	// ~/.config/promash/config.yaml
	configDir := filepath.Join(homeDir, ".config", "promash")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
