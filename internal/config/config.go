package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis   `yaml:"redis"`
	History  History `yaml:"history"`
	Bot      Bot     `yaml:"bot"`
	Series   Series  `yaml:"series"`
	TUI      TUI     `yaml:"tui"`
}

type Redis struct {
	Host      string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port      string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SeriesTTL time.Duration `yaml:"series-ttl" env:"REDIS_SERIES_TTL" env-default:"24h"`
}

// History is where finished series are recorded.
type History struct {
	Driver string `yaml:"driver" env:"HISTORY_DRIVER" env-default:"sqlite3"`
	DSN    string `yaml:"dsn" env:"HISTORY_DSN" env-default:"file:history.db"`
}

type Bot struct {
	// Seed 0 seeds the AI from the clock.
	Seed int64 `yaml:"seed" env:"BOT_SEED" env-default:"0"`
}

type Series struct {
	DefaultBestOf int `yaml:"default-best-of" env:"SERIES_DEFAULT_BEST_OF" env-default:"3"`
}

type TUI struct {
	AIDelay time.Duration `yaml:"ai-delay" env:"TUI_AI_DELAY" env-default:"500ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// ParseLogLevel - maps the log-level setting to a slog level, info when unknown.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load - reads path when given, otherwise only the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
