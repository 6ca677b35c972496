package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Organize struct {
		Base string `mapstructure:"base"`
	} `mapstructure:"organize"`

	History struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"history"`

	Remote struct {
		Endpoint  string `mapstructure:"endpoint"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
		Bucket    string `mapstructure:"bucket"`
		Region    string `mapstructure:"region"`
		UseSSL    bool   `mapstructure:"use_ssl"`
	} `mapstructure:"remote"`
}

// Load reads config.yaml from the current directory, if present, and applies
// environment overrides. A missing config file is fine; every setting has a
// default or an env binding.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	// Credentials should come from the environment rather than the file.
	viper.BindEnv("remote.access_key", "DOCSORT_S3_ACCESS_KEY")
	viper.BindEnv("remote.secret_key", "DOCSORT_S3_SECRET_KEY")

	viper.SetDefault("history.path", "docsort.db")
	viper.SetDefault("remote.use_ssl", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Organize.Base == "" {
		if home, err := os.UserHomeDir(); err == nil {
			config.Organize.Base = filepath.Join(home, "Desktop")
		}
	}
	return &config, nil
}
