package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "8080"
	DefaultLoginMaxAttempts = 3
	DefaultLockoutMinutes   = 10
	DefaultBcryptCost       = 10
	DefaultSessionCookie    = "session_id"
)

type Config struct {
	Env              string
	Port             string
	LoginMaxAttempts int
	LockoutMinutes   int
	BcryptCost       int
	SessionCookie    string
}

func Load() *Config {
	env := getEnv("ENV", "development")

	// Environment variables take precedence over the file: godotenv.Load
	// never overwrites keys that are already set.
	file := "config/.env.dev"
	if env == "production" {
		file = "config/.env.prod"
	}
	if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not read %s: %v", file, err)
	}

	return &Config{
		Env:              env,
		Port:             getEnv("PORT", DefaultPort),
		LoginMaxAttempts: getEnvAsInt("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts),
		LockoutMinutes:   getEnvAsInt("LOCKOUT_MINUTES", DefaultLockoutMinutes),
		BcryptCost:       getEnvAsInt("BCRYPT_COST", DefaultBcryptCost),
		SessionCookie:    getEnv("SESSION_COOKIE", DefaultSessionCookie),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
