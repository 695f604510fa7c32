// Package auth issues and verifies the bearer tokens that identify
// document owners on the authenticated API surface.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrUnexpectedSigningMethod is returned when a token was signed
	// with anything other than HMAC.
	ErrUnexpectedSigningMethod = fmt.Errorf("unexpected signing method")
)

// UserClaims is the JWT claims struct for an API user. Subject carries
// the user id; Admin grants access to every document.
type UserClaims struct {
	jwt.RegisteredClaims

	Admin bool `json:"admin,omitempty"`
}

// TokenManager signs and verifies HS256 tokens.
type TokenManager struct {
	secretKey     string
	tokenDuration time.Duration
}

// NewTokenManager creates a new TokenManager.
func NewTokenManager(secretKey string, tokenDuration time.Duration) *TokenManager {
	return &TokenManager{
		secretKey:     secretKey,
		tokenDuration: tokenDuration,
	}
}

// Generate issues a token for the given user id.
func (m *TokenManager) Generate(userID string, admin bool) (string, error) {
	now := time.Now()
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
		},
		Admin: admin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signedToken, nil
}

// Verify parses the given token and returns its claims.
func (m *TokenManager) Verify(token string) (*UserClaims, error) {
	claims := &UserClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%s: %w", token.Method.Alg(), ErrUnexpectedSigningMethod)
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	return claims, nil
}
