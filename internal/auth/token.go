// Package auth issues and validates the service tokens that guard the
// generation endpoints. There are no interactive users; tokens identify
// operators and tooling.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"starforge-server/internal/shared/config"
)

// RoleAdmin is required for endpoints that mutate the galaxy.
const RoleAdmin = "admin"

type Claims struct {
	Subject string `json:"sub_name"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func secret() (string, error) {
	if config.GlobalConfig == nil || config.GlobalConfig.Auth.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret is not configured")
	}
	return config.GlobalConfig.Auth.JWTSecret, nil
}

// GenerateToken mints a signed service token for the given subject and role.
func GenerateToken(subject, role string) (string, error) {
	s, err := secret()
	if err != nil {
		return "", fmt.Errorf("cannot generate token: %w", err)
	}

	now := time.Now()
	claims := Claims{
		Subject: subject,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.GlobalConfig.Auth.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s))
}

// ValidateToken parses and verifies a service token.
func ValidateToken(tokenString string) (*Claims, error) {
	s, err := secret()
	if err != nil {
		return nil, fmt.Errorf("cannot validate token: %w", err)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
