package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string `mapstructure:"env"`        // current application environment (local, dev, prod etc)
	DataDir   string `mapstructure:"data_dir"`   // directory holding the store file and log
	DeckPath  string `mapstructure:"deck_path"`  // path to the YAML deck file
	StoreFile string `mapstructure:"store_file"` // store file name inside the data directory
}

// Load reads configuration from config files and environment variables.
// Every key has a default, so a missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(defaultDataDir())

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("deck_path", filepath.Join(defaultDataDir(), "deck.yaml"))
	v.SetDefault("store_file", "store.json")

	// Configure environment variable handling and key mapping.
	v.SetEnvPrefix("quizcards")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// WithDataDir sets a custom data directory
func (c *Config) WithDataDir(path string) *Config {
	c.DataDir = path
	return c
}

// WithDeckPath sets a custom deck file path
func (c *Config) WithDeckPath(path string) *Config {
	c.DeckPath = path
	return c
}

// StorePath returns the full path of the store file
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, c.StoreFile)
}

// LogPath returns the full path of the log file
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "quizcards.log")
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".quizcards"
	}
	return filepath.Join(homeDir, ".quizcards")
}
