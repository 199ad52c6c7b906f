package jwt

import (
	"errors"
	"fmt"
	"time"

	"gameatlas/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSubject = errors.New("token subject is not a user id")
	ErrMissingSecret  = errors.New("jwt secret is not configured")
)

func secret() ([]byte, error) {
	if config.AppConfig == nil || config.AppConfig.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	return []byte(config.AppConfig.JWTSecret), nil
}

// GenerateToken creates a new JWT for a given user ID.
func GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat": time.Now().Unix(),
	}

	key, err := secret()
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(key)
}

// ParseToken verifies an HS256 token and returns the user ID in its "sub" claim.
func ParseToken(tokenString string) (uint, error) {
	key, err := secret()
	if err != nil {
		return 0, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}
	userIDFloat, ok := claims["sub"].(float64)
	if !ok || userIDFloat <= 0 {
		return 0, ErrInvalidSubject
	}
	return uint(userIDFloat), nil
}
