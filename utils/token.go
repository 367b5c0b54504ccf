package utils

import (
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenTTL is how long a session token stays valid after login.
const TokenTTL = time.Hour

func signingSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "alimentador-dev-secret" // Set JWT_SECRET in production
	}
	return []byte(secret)
}

// GenerateToken issues a signed session token embedding the account id.
func GenerateToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	})
	return token.SignedString(signingSecret())
}

// ParseToken validates a session token and returns the account id it carries.
// Expired or malformed tokens return an error.
func ParseToken(tokenString string) (uint, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return signingSecret(), nil
	})
	if err != nil {
		return 0, err
	}

	raw, ok := claims["user_id"]
	if !ok {
		return 0, errors.New("token has no user_id claim")
	}
	id, ok := raw.(float64)
	if !ok {
		return 0, errors.New("invalid user_id claim")
	}
	return uint(id), nil
}
