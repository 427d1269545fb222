package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every runtime knob of the server. All values come from
// environment variables. MONGO_URI and REDIS_ADDR are optional; without
// them the server falls back to in-memory storage and single-instance
// live-code fanout.
type Config struct {
	Port           string
	JWTSecret      string
	MongoURI       string
	MongoDB        string
	RedisAddr      string
	AllowedOrigins []string
	TokenTTLHours  int
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       getEnvOrDefault("MONGO_DB_NAME", "intraview"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		TokenTTLHours: 24,
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = []string{origins}
	} else {
		cfg.AllowedOrigins = []string{"*"}
	}
	if ttl := os.Getenv("TOKEN_TTL_HOURS"); ttl != "" {
		n, err := strconv.Atoi(ttl)
		if err != nil || n <= 0 {
			return nil, errors.New("TOKEN_TTL_HOURS must be a positive integer")
		}
		cfg.TokenTTLHours = n
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev"
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
