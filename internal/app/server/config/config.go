package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env     string
	DB      DB
	Server  Server
	Session Session
	Tools   Tools
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

type Session struct {
	TTL time.Duration `env:"SESSION_TTL"`
}

type Tools struct {
	// Catalog - путь к YAML-каталогу инструментов; пустой путь отключает засев.
	Catalog string `env:"TOOLS_CATALOG"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", ":8080")
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("session_ttl", "24h")
	v.SetDefault("shutdown_timeout", "10s")
}

// MustLoad читает .env (если есть) и переменные окружения.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := load(v)
	if cfg.DB.DatabaseURI == "" {
		log.Fatalln("DATABASE_URI is required")
	}
	return cfg
}

func load(v *viper.Viper) *Config {
	return &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Session: Session{TTL: v.GetDuration("session_ttl")},
		Tools:   Tools{Catalog: v.GetString("tools_catalog")},
	}
}
