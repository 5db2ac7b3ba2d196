package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ResetTokenLifetime is how long a password reset token stays valid.
const ResetTokenLifetime = 15 * time.Minute

// Config holds everything the app reads from the environment. It is built
// once in main and passed into the pieces that need it; nothing reads env
// vars after startup.
type Config struct {
	Port string

	JWTSecret    string
	JWTLifetime  time.Duration
	CookieSecret string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string
}

// Load reads the environment into a Config. JWT_SECRET and COOKIE_SECRET are
// required; everything else has a sensible default.
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CookieSecret:  os.Getenv("COOKIE_SECRET"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "beatbazaar"),
		DBPort:        getenv("DB_PORT", "5432"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SMTPHost:      getenv("SMTP_HOST", "localhost"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		EmailFrom:     getenv("EMAIL_FROM", "noreply@beatbazaar.example"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set in the environment")
	}
	if cfg.CookieSecret == "" {
		return Config{}, fmt.Errorf("COOKIE_SECRET is not set in the environment")
	}

	lifetime := getenv("JWT_LIFETIME", "24h")
	d, err := time.ParseDuration(lifetime)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JWT_LIFETIME %q: %w", lifetime, err)
	}
	cfg.JWTLifetime = d

	if n, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		cfg.RedisDB = n
	}
	cfg.SMTPPort, err = strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
