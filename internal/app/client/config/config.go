package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultEnv            = "local"
	defaultConfigDir      = ".contenthub"
	defaultActivityLimit  = 50
	defaultRequestTimeout = 30 * time.Second
	sessionFile           = "session.db"
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	ServerAddress  string        `mapstructure:"server_address"`
	EnableTLS      bool          `mapstructure:"enable_tls"`
	ConfigDir      string        `mapstructure:"config_dir"`
	SessionPath    string        `mapstructure:"session_path"`
	ActivityLimit  int           `mapstructure:"activity_limit"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Load собирает конфигурацию клиента из .env, переменных окружения и
// необязательного YAML-файла. Пустой file - файл не читается.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	return load(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("enable_tls", false)
	v.SetDefault("config_dir", "")
	v.SetDefault("session_path", "")
	v.SetDefault("activity_limit", defaultActivityLimit)
	v.SetDefault("request_timeout", defaultRequestTimeout)
}

func load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:            v.GetString("app_env"),
		ServerAddress:  v.GetString("server_address"),
		EnableTLS:      v.GetBool("enable_tls"),
		ConfigDir:      v.GetString("config_dir"),
		SessionPath:    v.GetString("session_path"),
		ActivityLimit:  v.GetInt("activity_limit"),
		RequestTimeout: v.GetDuration("request_timeout"),
	}

	if cfg.ConfigDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.ConfigDir = filepath.Join(home, defaultConfigDir)
	}
	if cfg.SessionPath == "" {
		cfg.SessionPath = filepath.Join(cfg.ConfigDir, sessionFile)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return errors.New("server_address must not be empty")
	}
	if c.ActivityLimit < 0 {
		return errors.New("activity_limit must not be negative")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	return nil
}

// BaseURL - адрес сервера со схемой.
func (c *Config) BaseURL() string {
	if c.EnableTLS {
		return "https://" + c.ServerAddress
	}
	return "http://" + c.ServerAddress
}

func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
