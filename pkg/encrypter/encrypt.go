package encrypter

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

var (
	ErrEmptySecret = errors.New("encryption secret is empty")
	ErrMalformed   = errors.New("sealed value is malformed")
	// ErrDecryptionFailed covers a wrong key, tampering and mismatched associated data alike.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Seal returns base64url(nonce || ciphertext).
func (e *implEncrypter) Seal(plaintext, associated []byte) (string, error) {
	nonce := make([]byte, e.aead.NonceSize(), e.aead.NonceSize()+len(plaintext)+e.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encrypter: nonce: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(e.aead.Seal(nonce, nonce, plaintext, associated)), nil
}

func (e *implEncrypter) Open(sealed string, associated []byte) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(raw) < e.aead.NonceSize()+e.aead.Overhead() {
		return nil, ErrMalformed
	}
	n := e.aead.NonceSize()
	plaintext, err := e.aead.Open(nil, raw[:n], raw[n:], associated)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
