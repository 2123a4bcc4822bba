package jwt

import (
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewTokenService("secret", 24*time.Hour)
	loginTime := time.Now().Truncate(time.Second)

	token, err := svc.Generate("m1", "standard", loginTime)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "m1", claims.MemberID)
	assert.Equal(t, "standard", claims.KeyType)
	assert.True(t, claims.LoginTime.Equal(loginTime))
}

func TestTokenService_ValidateInvalidToken(t *testing.T) {
	svc := NewTokenService("secret", 24*time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ValidateWrongSecret(t *testing.T) {
	signer := NewTokenService("secret-a", 24*time.Hour)
	verifier := NewTokenService("secret-b", 24*time.Hour)

	token, err := signer.Generate("m1", "standard", time.Now())
	assert.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ValidateExpiredToken(t *testing.T) {
	svc := NewTokenService("secret", 24*time.Hour)

	token, err := svc.Generate("m1", "standard", time.Now().Add(-25*time.Hour))
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenService_ValidateWrongSigningMethod(t *testing.T) {
	svc := NewTokenService("secret", 24*time.Hour)

	claims := gjwt.MapClaims{
		"memberId": "m1",
		"keyType":  "standard",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	unsigned := gjwt.NewWithClaims(gjwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(gjwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Expiry(t *testing.T) {
	svc := NewTokenService("secret", 12*time.Hour)
	assert.Equal(t, 12*time.Hour, svc.Expiry())
}
