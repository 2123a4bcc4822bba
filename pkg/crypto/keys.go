package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
)

// HashKey hashes a member access key using bcrypt
func HashKey(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash key: %w", err)
	}
	return string(bytes), nil
}

// CheckKey compares an access key with a stored hash
func CheckKey(key, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key))
	return err == nil
}

// GenerateRandomKey generates a random key of the given byte length,
// hex encoded
func GenerateRandomKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateAuthKey generates a 48-character recruiter auth key
func GenerateAuthKey() (string, error) {
	return GenerateRandomKey(24)
}

// GenerateAccessKey generates a 32-character member access key
func GenerateAccessKey() (string, error) {
	return GenerateRandomKey(16)
}
