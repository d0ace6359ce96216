// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the passphrase salt in bytes.
const SaltSize = 16

// keyWrapService is the private implementation of [KeyWrapService].
type keyWrapService struct {
	// Argon2id tuning parameters. Stored in the struct so tests can use a
	// cheaper profile than production.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyWrapService constructs a [KeyWrapService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyWrapService() KeyWrapService {
	return &keyWrapService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  KeySize,
	}
}

// NewFastKeyWrapService returns a [KeyWrapService] with a minimal Argon2id
// profile. It is meant for tests only.
func NewFastKeyWrapService() KeyWrapService {
	return &keyWrapService{
		argonTime:    1,
		argonMemory:  64,
		argonThreads: 1,
		argonKeyLen:  KeySize,
	}
}

// NewSalt implements [KeyWrapService].
func (k *keyWrapService) NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return salt, nil
}

// DeriveKEK implements [KeyWrapService].
func (k *keyWrapService) DeriveKEK(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(
		passphrase,
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// AuthHash implements [KeyWrapService].
func (k *keyWrapService) AuthHash(KEK []byte, domain string) []byte {
	h := sha256.New()
	h.Write(KEK)
	h.Write([]byte(domain)) // domain separates the hash from the KEK itself
	return h.Sum(nil)
}

// WrapKey implements [KeyWrapService].
func (k *keyWrapService) WrapKey(key, KEK []byte) ([]byte, error) {
	nonce, ciphertext, err := Seal(KEK, key)
	if err != nil {
		return nil, fmt.Errorf("wrap key: %w", err)
	}
	return append(nonce, ciphertext...), nil
}

// UnwrapKey implements [KeyWrapService].
func (k *keyWrapService) UnwrapKey(wrapped, KEK []byte) ([]byte, error) {
	if len(wrapped) <= NonceSize {
		return nil, ErrCiphertextTooShort
	}

	key, err := Open(KEK, wrapped[:NonceSize], wrapped[NonceSize:])
	if err != nil {
		return nil, fmt.Errorf("unwrap key: %w", err)
	}
	return key, nil
}
