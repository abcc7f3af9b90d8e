package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// StoreBackend selects which persistent store adapter backs the cart.
type StoreBackend string

const (
	BackendMemory StoreBackend = "memory"
	BackendFile   StoreBackend = "file"
	BackendRedis  StoreBackend = "redis"
)

type Config struct {
	AppEnv   string `split_words:"true" default:"dev"`
	LogLevel string `split_words:"true" default:"info"`

	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	CatalogBaseURL string `envconfig:"CATALOG_BASE_URL" default:"https://fakestoreapi.com"`

	StoreBackend StoreBackend `split_words:"true" default:"file"`
	StoreFileDir string       `split_words:"true" default:".storefront"`
	CartKey      string       `split_words:"true" default:"cart"`

	RedisURL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// Load reads configuration from the environment, after loading a local
// .env file when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}

	switch cfg.StoreBackend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	return cfg, nil
}
