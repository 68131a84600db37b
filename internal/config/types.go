package config

import "time"

type Config struct {
	Database       Database
	JWTSecret      string
	AccessTokenTTL time.Duration
	Port           string
	Environment    string
	AllowedOrigins []string
}

// connection settings for the postgres pool
type Database struct {
	Name     string
	Host     string
	User     string
	Password string
	Port     string
	MaxConns int32
}

type Flags struct {
	Command string
	Dir     string
}
