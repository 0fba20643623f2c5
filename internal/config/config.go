// Package config loads process configuration from the environment
package config

import (
	stderrors "errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// Storage backends accepted by Store
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

// Config is the server and client configuration
type Config struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	Store string `env:"CHARSHEET_STORE" envDefault:"memory"`

	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`

	MongoURI      string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string        `env:"MONGODB_DATABASE" envDefault:"charsheet"`
	MongoTimeout  time.Duration `env:"MONGODB_TIMEOUT" envDefault:"10s"`

	APIURL string `env:"CHARSHEET_API_URL" envDefault:"http://localhost:8080"`

	CatalogURL     string `env:"DND5E_API_URL"`
	CatalogOffline bool   `env:"DND5E_OFFLINE" envDefault:"false"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment win over the file.
func Load(dotenvPaths ...string) (*Config, error) {
	if err := godotenv.Load(dotenvPaths...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the env tags cannot express
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	switch c.Store {
	case StoreMemory, StoreRedis, StoreMongo:
	default:
		vb.InvalidField("store", "must be memory, redis or mongo")
	}
	errors.ValidateRange("port", c.Port, 1, 65535, vb)
	return vb.Build()
}
