package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"
)

// AuthCache is a short-TTL cache in front of the auth_keys lookup. Entries
// are keyed by a digest of the opaque auth key (the key itself never lands in
// Redis) and the cached session is stored AES-GCM encrypted.
type AuthCache struct {
	encryptionKey []byte
	ttl           time.Duration
}

var (
	setCacheValue = Set
	getCacheValue = Get
	delCacheValue = Del
)

// NewAuthCache creates an auth cache. The encryption key is a 64-char hex
// string (32 bytes).
func NewAuthCache(encryptionKeyHex string, ttl time.Duration) (*AuthCache, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AuthCache{encryptionKey: key, ttl: ttl}, nil
}

// CacheKey derives the Redis key for an auth key.
func CacheKey(authKey string) string {
	sum := sha256.Sum256([]byte(authKey))
	return "authkey:" + hex.EncodeToString(sum[:])
}

// Put stores a resolved session for an auth key.
func (c *AuthCache) Put(ctx context.Context, authKey string, session any) error {
	jsonData, err := json.Marshal(session)
	if err != nil {
		return err
	}
	encrypted, err := c.encrypt(jsonData)
	if err != nil {
		return err
	}
	return setCacheValue(ctx, CacheKey(authKey), encrypted, c.ttl)
}

// Lookup retrieves a cached session into out. Returns false on miss.
func (c *AuthCache) Lookup(ctx context.Context, authKey string, out any) (bool, error) {
	encrypted, err := getCacheValue(ctx, CacheKey(authKey))
	if err != nil {
		// Treat any miss or Redis error as a cache miss; the caller falls
		// back to the record store lookup.
		return false, nil
	}
	decrypted, err := c.decrypt(encrypted)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(decrypted, out); err != nil {
		return false, err
	}
	return true, nil
}

// Invalidate drops the cached session for an auth key.
func (c *AuthCache) Invalidate(ctx context.Context, authKey string) error {
	return delCacheValue(ctx, CacheKey(authKey))
}

func (c *AuthCache) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(c.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (c *AuthCache) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(c.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
