// Package auth provides session token issuing/verification and password
// hashing.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appConfig "github.com/aidnetlk/aidnet/internal/config"
)

// ErrInvalidToken indicates a token that failed signature, shape or
// expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims is what a verified session token asserts.
type Claims struct {
	AccountID uint
	Email     string
}

// TokenManager issues and verifies HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager from auth configuration.
func NewTokenManager(cfg appConfig.AuthConfig) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue signs a session token for an account.
func (m *TokenManager) Issue(accountID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"account_id": float64(accountID),
		"email":      email,
		"iat":        now.Unix(),
		"exp":        now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and returns its claims.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	accountID, ok := mapClaims["account_id"].(float64)
	if !ok || accountID <= 0 {
		return nil, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)

	return &Claims{AccountID: uint(accountID), Email: email}, nil
}
