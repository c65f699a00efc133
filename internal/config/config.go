package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultSessionSecret = "change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env           string
	ServerPort    string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	SessionSecret string
	SwaggerHost   string
}

// Load builds Config from environment with development defaults.
// A local .env file is read first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:           getEnv("APP_ENV", "development"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/hrflow?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
	}
}

// Production reports whether the process runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Validate rejects configurations that must never reach production,
// in particular the fallback session signing secret.
func (c *Config) Validate() error {
	if c.Production() && c.SessionSecret == defaultSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
