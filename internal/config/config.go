// Package config holds the runtime configuration of the backend.
//
// Values are read from the environment with sensible defaults, an optional
// config.yaml in the working directory can override them.
package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

type Config struct {
	Address       string `mapstructure:"address"`         // Listen address for the HTTP server
	DBPath        string `mapstructure:"db_path"`         // Path to the sqlite database file
	JWTSecret     string `mapstructure:"jwt_secret"`      // Secret used to sign session tokens
	TokenTTLHours int    `mapstructure:"token_ttl_hours"` // Session token lifetime
}

var (
	appConfig *Config
	once      sync.Once
)

// Load reads the configuration once and caches it for the process lifetime.
func Load() (*Config, error) {
	var err error

	once.Do(func() {
		v := viper.New()

		v.SetDefault("address", ":8080")
		v.SetDefault("db_path", "data/finance.db")
		v.SetDefault("jwt_secret", "insecure-development-secret")
		v.SetDefault("token_ttl_hours", 24)

		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AutomaticEnv()

		// The config file is optional, the environment is not
		if readErr := v.ReadInConfig(); readErr != nil {
			if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
				err = fmt.Errorf("read config: %w", readErr)
				return
			}
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}

	return appConfig, nil
}

// Get returns the loaded configuration, loading it on first use.
func Get() *Config {
	c, err := Load()
	if err != nil {
		panic(err)
	}

	return c
}
