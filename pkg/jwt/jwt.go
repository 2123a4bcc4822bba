package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the member-session token payload. LoginTime is carried
// explicitly so handlers can enforce the 24h soft expiry in application code
// on top of the token's own exp claim.
type Claims struct {
	MemberID  string    `json:"memberId"`
	KeyType   string    `json:"keyType"`
	LoginTime time.Time `json:"loginTime"`
	jwt.RegisteredClaims
}

// TokenService signs and validates member-session tokens
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Expiry returns the configured token lifetime.
func (s *TokenService) Expiry() time.Duration {
	return s.expiry
}

// Generate creates a signed member-session token
func (s *TokenService) Generate(memberID, keyType string, loginTime time.Time) (string, error) {
	claims := Claims{
		MemberID:  memberID,
		KeyType:   keyType,
		LoginTime: loginTime,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(loginTime.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(loginTime),
			Subject:   memberID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a member-session token
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
