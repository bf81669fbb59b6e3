package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	Port       string `env:"PORT" envDefault:"8080"`
	ListenAddr string `env:"LISTEN_ADDR"`
	GinMode    string `env:"GIN_MODE" envDefault:"release"`
	SiteName   string `env:"SITE_NAME" envDefault:"Inkwell"`

	Database DatabaseConfig
	Log      LogConfig
}

// DatabaseConfig selects the storage engine.
type DatabaseConfig struct {
	Driver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	Path   string `env:"DATABASE_PATH" envDefault:"inkwell.db"`
	URL    string `env:"DATABASE_URL"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load 从环境变量读取应用配置。若当前目录存在 .env 文件，会先将其载入环境。
func Load() (AppConfig, error) {
	// a missing .env file is the normal case outside development
	_ = godotenv.Load()
	return parse()
}

func parse() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: parse environment: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	cfg.ListenAddr = strings.TrimSpace(cfg.ListenAddr)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":" + cfg.Port
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	switch cfg.Database.Driver {
	case "sqlite":
		if strings.TrimSpace(cfg.Database.Path) == "" {
			cfg.Database.Path = "inkwell.db"
		}
	case "postgres":
		if strings.TrimSpace(cfg.Database.URL) == "" {
			return AppConfig{}, fmt.Errorf("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return AppConfig{}, fmt.Errorf("config: unsupported DATABASE_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

// IsDevelopment reports whether gin runs in debug mode.
func (c AppConfig) IsDevelopment() bool {
	return c.GinMode == "debug"
}
