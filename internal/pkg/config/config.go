package config

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type JWTConfig struct {
	Secret   string `env:"JWT_SECRET"`
	Issuer   string `env:"JWT_ISSUER,   default=smart-erp"`
	Audience string `env:"JWT_AUDIENCE, default=smart-erp-clients"`
	// ExpireMinutes stays a string so a bad value degrades to the default
	// instead of failing startup; see TTL.
	ExpireMinutes string `env:"JWT_EXPIRE_MINUTES"`
}

// TTL returns the configured token lifetime. Missing, non-numeric, or
// non-positive values fall back to 60 minutes.
func (c JWTConfig) TTL() time.Duration {
	minutes, err := strconv.Atoi(c.ExpireMinutes)
	if err != nil || minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=smart_erp"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load resolves configuration once at startup: a .env file (when present)
// seeds the environment, then go-envconfig reads the process environment.
// godotenv never overrides variables that are already set, so real
// environment values always win over the file.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
