// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals peer credentials stored by a sync server.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// sealedPrefix marks values produced by [credentialSealer.Seal].
const sealedPrefix = "sealed:v1:"

// keySalt domain-separates the derived key from other uses of the secret.
var keySalt = []byte("go-sync-keeper/peer-credentials")

var (
	ErrNoKey            = errors.New("credential is sealed but no credential key is configured")
	ErrMalformedSealed  = errors.New("sealed credential is malformed")
	ErrDecryptionFailed = errors.New("sealed credential cannot be opened with this key")
)

// credentialSealer is the AES-256-GCM implementation of [CredentialSealer].
type credentialSealer struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	aead cipher.AEAD
}

// NewCredentialSealer derives a 256-bit key from secret with Argon2id and
// returns a sealer using it. An empty secret yields a sealer that stores
// values as given and refuses to open sealed ones.
//
// Argon2id parameters follow the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewCredentialSealer(secret string) (CredentialSealer, error) {
	s := &credentialSealer{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
	if secret == "" {
		return s, nil
	}

	block, err := aes.NewCipher(s.deriveKey(secret))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	s.aead, err = cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return s, nil
}

func (s *credentialSealer) deriveKey(secret string) []byte {
	return argon2.IDKey([]byte(secret), keySalt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
}

// Seal implements [CredentialSealer]. The output is the prefix followed by
// base64(nonce ‖ ciphertext).
func (s *credentialSealer) Seal(plaintext string) (string, error) {
	if plaintext == "" || s.aead == nil {
		return plaintext, nil
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [CredentialSealer].
func (s *credentialSealer) Open(stored string) (string, error) {
	encoded, ok := strings.CutPrefix(stored, sealedPrefix)
	if !ok {
		return stored, nil
	}
	if s.aead == nil {
		return "", ErrNoKey
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedSealed, err)
	}

	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", ErrMalformedSealed
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}
