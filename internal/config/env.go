package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort      = "5000"
	defaultRateLimit = "30-M"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return FromEnv()
}

// builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")
	redisURL := os.Getenv("REDIS_URL")
	rateLimit := os.Getenv("RATE_LIMIT")

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = defaultPort
	}

	if rateLimit == "" {
		rateLimit = defaultRateLimit
	}

	if _, err := limiter.NewRateFromFormatted(rateLimit); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT %q is invalid: %w", rateLimit, err)
	}

	return &Config{
		Environment: environment,
		Port:        port,
		RedisURL:    redisURL,
		RateLimit:   rateLimit,
	}, nil
}
