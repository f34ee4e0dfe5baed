package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type StorageType string

const (
	StorageMemory StorageType = "memory"
	StorageRedis  StorageType = "redis"
)

type Config struct {
	HTTPAddr    string      `env:"HTTP_ADDR" envDefault:":8080"`
	StorageType StorageType `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string      `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	PuzzlePath  string      `env:"PUZZLE_PATH" envDefault:"data/puzzles.json"`
	LogLevel    string      `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	switch cfg.StorageType {
	case StorageMemory, StorageRedis:
	default:
		return Config{}, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
	return cfg, nil
}
