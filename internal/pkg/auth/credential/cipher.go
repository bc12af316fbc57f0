/*
Package credential manages the customer credential issued by the upstream commerce platform.

The credential is an opaque bearer token. It is never stored in plaintext on the client:
this package encrypts it with AES-256-GCM before it is written into the auth cookie, and
decrypts it back when a request carries the cookie. The package also provides the HTTP
middleware that surfaces the decrypted credential to handlers through the request context.
*/
package credential

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// ivLength is the nonce size recommended for GCM.
	ivLength = 12

	// tagLength is the GCM authentication tag size.
	tagLength = 16
)

var (
	// ErrMalformedPayload indicates that the cookie value is not a valid iv|tag|ciphertext blob.
	ErrMalformedPayload = errors.New("credential: malformed encrypted payload")
)

// deriveKey derives a 32-byte AES key from an arbitrary-length secret using SHA-256.
func deriveKey(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// EncryptToken encrypts the plaintext token with AES-256-GCM and encodes the result as
// base64url in the layout iv|tag|ciphertext, matching the cookie format consumed by
// DecryptToken.
func EncryptToken(token, secret string) (string, error) {
	block, err := aes.NewCipher(deriveKey(secret))
	if err != nil {
		return "", fmt.Errorf("credential: cipher init: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("credential: gcm init: %w", err)
	}

	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("credential: nonce generation: %w", err)
	}

	// Seal appends ciphertext||tag; the cookie layout is iv|tag|ciphertext.
	sealed := gcm.Seal(nil, iv, []byte(token), nil)
	ciphertext := sealed[:len(sealed)-tagLength]
	tag := sealed[len(sealed)-tagLength:]

	payload := make([]byte, 0, ivLength+tagLength+len(ciphertext))
	payload = append(payload, iv...)
	payload = append(payload, tag...)
	payload = append(payload, ciphertext...)

	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// DecryptToken decodes and decrypts a value produced by EncryptToken.
// It returns an error when the payload is malformed, was encrypted with a different
// secret, or was tampered with (GCM authentication failure).
func DecryptToken(payload, secret string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrMalformedPayload
	}

	if len(raw) < ivLength+tagLength {
		return "", ErrMalformedPayload
	}

	iv := raw[:ivLength]
	tag := raw[ivLength : ivLength+tagLength]
	ciphertext := raw[ivLength+tagLength:]

	block, err := aes.NewCipher(deriveKey(secret))
	if err != nil {
		return "", fmt.Errorf("credential: cipher init: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("credential: gcm init: %w", err)
	}

	sealed := make([]byte, 0, len(ciphertext)+tagLength)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("credential: decryption failed: %w", err)
	}

	return string(plaintext), nil
}
