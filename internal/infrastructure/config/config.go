package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig

	// LoginMaxAttempts failed logins per email within LoginWindowMinutes
	// trigger a temporary lockout. 0 disables the throttle.
	LoginMaxAttempts   int `env:"LOGIN_MAX_ATTEMPTS,    default=10"`
	LoginWindowMinutes int `env:"LOGIN_WINDOW_MINUTES,  default=15"`

	ActivityWorkers int `env:"ACTIVITY_WORKERS, default=4"`
}

type JWTConfig struct {
	// Secret is base64 key material; it must decode to at least 32 bytes
	// or startup fails.
	Secret            string `env:"JWT_SECRET"`
	ExpirationMinutes int    `env:"JWT_EXPIRATION_MINUTES, default=60"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=store"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
