package config

import "github.com/caarlos0/env/v10"

// Config centralizes the service configuration.
type Config struct {
	HTTPPort              string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL           string `env:"DATABASE_URL,required"`
	QuestionBankDir       string `env:"QUESTION_BANK_DIR" envDefault:"."`
	RedisAddr             string `env:"REDIS_ADDR"`
	RedisPassword         string `env:"REDIS_PASSWORD"`
	RedisDB               int    `env:"REDIS_DB" envDefault:"0"`
	ResultCacheTTLMinutes int    `env:"RESULT_CACHE_TTL_MINUTES" envDefault:"30"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
