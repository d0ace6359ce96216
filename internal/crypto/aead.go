// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// AES-256-GCM parameters shared by the envelope records and wrapped keys.
const (
	KeySize   = 32
	NonceSize = 12
	TagSize   = 16
)

// newGCM builds an AES-256-GCM AEAD with a 12-byte nonce and a 16-byte tag.
// Keys of any other length are rejected so a 128-bit key can never slip in.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithTagSize(block, TagSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// Seal encrypts plaintext under key with a fresh random nonce and returns the
// nonce and ciphertext (tag appended) separately.
func Seal(key, plaintext []byte) (nonce, ciphertext []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, NonceSize)
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	return nonce, gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open authenticates and decrypts ciphertext (tag appended) under key and
// nonce. Any modification of nonce, ciphertext or tag, and any wrong key,
// yields an error wrapping [ErrAuthenticationFailed]; no plaintext is
// returned in that case.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes", ErrAuthenticationFailed, len(nonce))
	}
	if len(ciphertext) < TagSize {
		return nil, ErrCiphertextTooShort
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	// gcm.Open returns nil for an empty plaintext.
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// RandomKey returns KeySize bytes from the OS CSPRNG.
func RandomKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return key, nil
}
