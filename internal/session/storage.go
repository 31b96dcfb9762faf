// Package session persists the signed-in identity in browser-side storage,
// the server-rendered equivalent of a localStorage key.
package session

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/crypto/hkdf"
)

// Storage is a key/value view over one browser's persistent storage, bound to
// a single request/response pair.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Driver opens the storage for a request.
type Driver interface {
	Open(w http.ResponseWriter, r *http.Request) Storage
}

// deriveKeys expands the configured secret into a 64-byte HMAC key and a
// 32-byte AES key.
func deriveKeys(secret, purpose string) (hashKey, blockKey []byte, err error) {
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("sgpg "+purpose))
	hashKey = make([]byte, 64)
	blockKey = make([]byte, 32)
	if _, err := io.ReadFull(kdf, hashKey); err != nil {
		return nil, nil, fmt.Errorf("derive hash key: %w", err)
	}
	if _, err := io.ReadFull(kdf, blockKey); err != nil {
		return nil, nil, fmt.Errorf("derive block key: %w", err)
	}
	return hashKey, blockKey, nil
}

// cookieOptions is shared by every driver that writes cookies.
type cookieOptions struct {
	maxAge int
	secure bool
}

func (o cookieOptions) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   o.maxAge,
		HttpOnly: true,
		Secure:   o.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (o cookieOptions) expired(name string) *http.Cookie {
	c := o.cookie(name, "")
	c.MaxAge = -1
	return c
}
