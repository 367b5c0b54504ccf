package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	tokenString, err := GenerateToken(17)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	userID, err := ParseToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, uint(17), userID)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("definitely.not.a.token")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uint(17),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("unit-test-secret"))
	assert.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}

func TestParseTokenMissingClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	noClaim := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := noClaim.SignedString([]byte("unit-test-secret"))
	assert.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}

func TestParseTokenDifferentSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	tokenString, err := GenerateToken(17)
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}
