package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAccessTokenTTL = 15 * time.Minute
	defaultDatabasePort   = "5432"
	defaultMaxConns       = 10
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	loadDotEnv()

	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	accessTTL := defaultAccessTokenTTL

	if raw := os.Getenv("ACCESS_TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("ACCESS_TOKEN_TTL is not a valid duration: %w", err)
		}

		if ttl <= 0 {
			return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be positive, got %s", ttl)
		}

		accessTTL = ttl
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "8080"
	}

	return &Config{
		Database:       LoadDatabase(),
		JWTSecret:      jwtSecret,
		AccessTokenTTL: accessTTL,
		Port:           port,
		Environment:    environment,
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}, nil
}

// reads the DB_* variables. missing values are left empty, see Missing
func LoadDatabase() Database {
	loadDotEnv()

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = defaultDatabasePort
	}

	return Database{
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Port:     port,
		MaxConns: defaultMaxConns,
	}
}

// returns the names of required database variables that are not set
func (d Database) Missing() []string {
	var missing []string

	if d.Name == "" {
		missing = append(missing, "DB_NAME")
	}

	if d.Host == "" {
		missing = append(missing, "DB_HOST")
	}

	if d.User == "" {
		missing = append(missing, "DB_USER")
	}

	if d.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}

	return missing
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}
}

func splitList(raw string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
