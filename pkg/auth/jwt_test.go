package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	svc := NewJWTService("secret", 12*time.Hour)

	token, err := svc.Generate(1, "doctor1", "doctor")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "doctor1", claims.Username)
	assert.Equal(t, "doctor", claims.Role)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerify_InvalidToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", -time.Hour)

	token, err := svc.Generate(1, "admin", "admin")
	assert.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-one", time.Hour)
	verifier := NewJWTService("secret-two", time.Hour)

	token, err := issuer.Generate(1, "admin", "admin")
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerify_RejectsNonHMAC(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID:   1,
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}
