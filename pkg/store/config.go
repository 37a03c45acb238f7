package store

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where and how planner state is stored, along with the
// other settings read from .stepio.yaml and STEPIO_* variables.
type Config interface {
	BasePath() string
	Driver() string
}

// Settings is the full loaded configuration.
type Settings struct {
	Path         string        `mapstructure:"path"`
	StoreDriver  string        `mapstructure:"driver"`
	LogLevel     string        `mapstructure:"log_level"`
	LogEncoding  string        `mapstructure:"log_encoding"`
	AuthLatency  time.Duration `mapstructure:"auth_latency"`
	AuthSecret   string        `mapstructure:"auth_secret"`
	ClockEvery   string        `mapstructure:"clock_every"`
	LanguageCode string        `mapstructure:"language"`
}

func (s *Settings) BasePath() string { return s.Path }
func (s *Settings) Driver() string   { return s.StoreDriver }

// LoadConfig reads .stepio.yaml from $STEPIO_CONFIG_PATH or the working
// directory, then overlays STEPIO_* environment variables (optionally from .env).
func LoadConfig() (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("path", "~/.stepio")
	v.SetDefault("driver", DriverDiskv)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_encoding", "console")
	v.SetDefault("auth_latency", 500*time.Millisecond)
	v.SetDefault("auth_secret", "stepio-local")
	v.SetDefault("clock_every", "1m")
	v.SetDefault("language", "en")
	v.SetConfigName(".stepio") // .yaml is implicit
	v.SetEnvPrefix("STEPIO")
	v.AutomaticEnv()

	if override := os.Getenv("STEPIO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, err
	}
	path, err := homedir.Expand(s.Path)
	if err != nil {
		return nil, err
	}
	s.Path = path
	return s, nil
}
