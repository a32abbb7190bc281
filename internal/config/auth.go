package config

import (
	"fmt"
	"time"
)

// AuthConfig holds session token and password configuration.
type AuthConfig struct {
	// JWTSecret signs session tokens (HS256). Required outside tests.
	JWTSecret string
	// TokenTTL is how long an issued session token stays valid.
	TokenTTL time.Duration
	// ResetTokenTTL is how long a password reset token stays valid.
	ResetTokenTTL time.Duration
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength int
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:         GetEnv("JWT_SECRET", ""),
		TokenTTL:          GetEnvDuration("AUTH_TOKEN_TTL", 30*24*time.Hour),
		ResetTokenTTL:     GetEnvDuration("AUTH_RESET_TOKEN_TTL", time.Hour),
		MinPasswordLength: GetEnvInt("AUTH_MIN_PASSWORD_LENGTH", 6),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TokenTTL must be greater than 0")
	}
	if c.ResetTokenTTL <= 0 {
		return fmt.Errorf("ResetTokenTTL must be greater than 0")
	}
	if c.MinPasswordLength < 1 {
		return fmt.Errorf("MinPasswordLength must be at least 1")
	}
	return nil
}
