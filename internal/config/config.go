package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	SimulateDecline bool   `mapstructure:"SIMULATE_DECLINE"`
}

// LoadConfig reads an optional .env file from dir plus the process
// environment. Environment variables win over file values.
func LoadConfig(dir string) (*Config, error) {
	viper.SetConfigFile(fmt.Sprintf("%s/.env", dir))
	viper.SetConfigType("env")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SIMULATE_DECLINE", false)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cf := &Config{}
	if err := viper.Unmarshal(cf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cf, nil
}
