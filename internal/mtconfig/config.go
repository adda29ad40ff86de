// Public domain.

// Package mtconfig holds moontool runtime configuration.
//
// Values come from .moontool.yaml, MOONTOOL_* environment variables, and
// command line flags bound to the same keys.
package mtconfig

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Defaults.
const (
	DefaultTimezone   = "Local"
	DefaultTimeFormat = "Mon Jan 2 15:04:05 MST 2006"
	DefaultLogLevel   = "info"
	DefaultListDays   = 30
)

// Config holds display and logging settings.
type Config struct {
	Timezone   string `mapstructure:"timezone"`
	TimeFormat string `mapstructure:"time_format"`
	LogLevel   string `mapstructure:"log_level"`
	ListDays   int    `mapstructure:"list_days"`
}

// Init points viper at the config file and environment.  With cfgFile
// empty, .moontool.yaml is searched for in the working directory and then
// the home directory, and a missing file is not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".moontool")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	viper.SetEnvPrefix("MOONTOOL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &nf) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// Load reads configuration from viper, applying defaults for values not
// set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("timezone", DefaultTimezone)
	viper.SetDefault("time_format", DefaultTimeFormat)
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("list_days", DefaultListDays)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return cfg, err
	}
	if cfg.TimeFormat == "" {
		return cfg, errors.New("time_format must not be empty")
	}
	if cfg.ListDays <= 0 {
		return cfg, fmt.Errorf("list_days must be positive, got %d", cfg.ListDays)
	}
	return cfg, nil
}

// Location resolves the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
