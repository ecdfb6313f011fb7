package auth

import (
	"fmt"
	"time"
)

const defaultIssuer = "claims-portal-backend"

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
}

// NewAuthConfig builds a config, filling the issuer and ttl defaults
func NewAuthConfig(secret string, ttl time.Duration) *AuthConfig {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthConfig{JWTSecret: secret, TokenTTL: ttl, Issuer: defaultIssuer}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}

	if c.Issuer == "" {
		return fmt.Errorf("issuer is required")
	}

	return nil
}
