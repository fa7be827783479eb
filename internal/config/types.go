package config

type Config struct {
	Environment string
	Port        string
	RedisURL    string
	RateLimit   string
}
