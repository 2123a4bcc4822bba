package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckKey(t *testing.T) {
	hash, err := HashKey("a1b2c3d4e5f60718293a4b5c6d7e8f90")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckKey("a1b2c3d4e5f60718293a4b5c6d7e8f90", hash))
	assert.False(t, CheckKey("wrong-key", hash))
}

func TestGenerateRandomKey(t *testing.T) {
	key, err := GenerateRandomKey(16)
	assert.NoError(t, err)
	assert.Len(t, key, 32) // hex encoded

	other, err := GenerateRandomKey(16)
	assert.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestGenerateAuthAndAccessKeys(t *testing.T) {
	authKey, err := GenerateAuthKey()
	assert.NoError(t, err)
	assert.Len(t, authKey, 48)

	accessKey, err := GenerateAccessKey()
	assert.NoError(t, err)
	assert.Len(t, accessKey, 32)
}
