package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:"0.0.0.0:8080"`

	ReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"5s"`

	// Empty disables the board cache.
	RedisURL      string `envconfig:"REDIS_URL"`
	BoardCacheTTL int    `envconfig:"BOARD_CACHE_TTL" default:"3600"` // seconds

	StrictRanks bool `envconfig:"FEN_STRICT_RANKS" default:"false"`

	Log LogConfig `envconfig:"LOG"`
}

// LogConfig is read from LOG_LEVEL, LOG_FORMAT, LOG_TO_CONSOLE, LOG_TO_FILE,
// LOG_FILE and LOG_CALLER.
type LogConfig struct {
	Level   string `envconfig:"LEVEL" default:"info"`
	Format  string `envconfig:"FORMAT" default:"legacy"`
	Console bool   `envconfig:"TO_CONSOLE" default:"true"`
	ToFile  bool   `envconfig:"TO_FILE" default:"false"`
	File    string `envconfig:"FILE" default:"logs/fenboard.log"`
	Caller  bool   `envconfig:"CALLER" default:"false"`
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.ListenAddr = strings.TrimSpace(cfg.ListenAddr)
	cfg.RedisURL = strings.TrimSpace(cfg.RedisURL)

	if cfg.ListenAddr == "" {
		return nil, errors.New("LISTEN_ADDR is required")
	}
	if cfg.BoardCacheTTL <= 0 {
		return nil, errors.New("BOARD_CACHE_TTL must be positive")
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 {
		return nil, errors.New("HTTP timeouts must be positive")
	}
	return cfg, nil
}

func (c *AppConfig) CacheTTL() time.Duration {
	return time.Duration(c.BoardCacheTTL) * time.Second
}
