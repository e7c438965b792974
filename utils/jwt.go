package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs an HS256 token carrying the user id.
func GenerateJWT(userID uint, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret not set")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseUserID validates tokenString and returns its userId claim.
func ParseUserID(tokenString, secret string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	switch id := claims["userId"].(type) {
	case float64: // JSON numbers decode as float64
		if id <= 0 {
			return 0, errors.New("invalid userId claim")
		}
		return uint(id), nil
	default:
		return 0, errors.New("userId claim missing")
	}
}
