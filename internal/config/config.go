// Package config provides environment-based configuration for the server
// and admin authentication.
package config

import (
	"fmt"
	"os"
)

// ServerConfig holds the HTTP server and storage configuration.
type ServerConfig struct {
	Addr        string
	DatabaseURL string
}

// NewServerConfig creates server configuration from environment variables.
// It reads PORT (default: 8080) and DATABASE_URL (required).
func NewServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	return &ServerConfig{
		Addr:        ":" + port,
		DatabaseURL: databaseURL,
	}, nil
}

// AdminConfig holds the single configured admin account. Credentials come
// from the environment; the password is stored only as a bcrypt hash.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// NewAdminConfig creates admin credentials from environment variables.
// It reads ADMIN_EMAIL and either ADMIN_PASSWORD_HASH (a bcrypt hash) or,
// for development setups, ADMIN_PASSWORD which is hashed at startup.
func NewAdminConfig(passwords *PasswordConfig) (*AdminConfig, error) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL is required but not set")
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required but not set")
		}
		hashed, err := passwords.HashPassword(password)
		if err != nil {
			return nil, err
		}
		hash = hashed
	}

	return &AdminConfig{
		Email:        email,
		PasswordHash: hash,
	}, nil
}
