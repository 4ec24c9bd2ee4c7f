// Package encrypter seals small secrets, such as delegated mail tokens, before
// they are written to shared storage.
package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Encrypter seals values with AES-256-GCM. The associated data passed to Seal
// must be passed again to Open, which binds a ciphertext to its owner.
type Encrypter interface {
	Seal(plaintext, associated []byte) (string, error)
	Open(sealed string, associated []byte) ([]byte, error)
}

type implEncrypter struct {
	aead cipher.AEAD
}

const keyInfo = "advisor-alert-srv/encrypter/v1"

// New derives the AES-256 key from secret with HKDF-SHA256, so secret can be any non-empty string.
func New(secret string) (Encrypter, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &implEncrypter{aead: aead}, nil
}
