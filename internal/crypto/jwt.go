package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager verifies HS256 bearer tokens minted by the authentication layer.
//
// The subject claim carries the user id a connection is bound to.
type JWTManager struct {
	secret []byte
}

// NewJWTManager builds a manager for the shared signing secret.
func NewJWTManager(secret string) (*JWTManager, error) {
	if len(secret) < 8 {
		return nil, errors.New("jwt secret must be at least 8 bytes")
	}
	return &JWTManager{secret: []byte(secret)}, nil
}

// CreateToken signs a token for userID valid for ttl. It is used by tooling
// and tests; production tokens are issued elsewhere.
func (m *JWTManager) CreateToken(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("empty subject")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates signature and expiry and returns the claims.
func (m *JWTManager) VerifyToken(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}
