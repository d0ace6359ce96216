// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-sealed-prefs/internal/crypto"
	"github.com/MKhiriev/go-sealed-prefs/models"
)

// KeyHandle is a reference to a vault key. The key material is kept in a
// memguard enclave: encrypted in memory and unsealed into a locked buffer only
// while a single Encrypt or Decrypt call runs. A handle is immutable and safe
// for concurrent use.
type KeyHandle struct {
	info    models.VaultKeyInfo
	enclave *memguard.Enclave
}

// NewKeyHandle seals material into a new handle. material is wiped before the
// function returns, whether it succeeds or not.
func NewKeyHandle(info models.VaultKeyInfo, material []byte) (*KeyHandle, error) {
	defer memguard.WipeBytes(material)

	if len(material) != info.Spec.KeySizeBytes() {
		return nil, fmt.Errorf("key material for %s is %d bytes, spec wants %d",
			info.Alias, len(material), info.Spec.KeySizeBytes())
	}

	return &KeyHandle{
		info:    info,
		enclave: memguard.NewEnclave(material),
	}, nil
}

// Alias returns the alias the key is stored under.
func (h *KeyHandle) Alias() models.KeyAlias {
	return h.info.Alias
}

// Info returns the key's non-secret metadata.
func (h *KeyHandle) Info() models.VaultKeyInfo {
	return h.info
}

// Encrypt seals plaintext with a fresh random 12-byte IV chosen inside the
// handle. Callers cannot supply an IV, so an IV is never reused under this
// key by construction.
func (h *KeyHandle) Encrypt(plaintext []byte) (iv, ciphertext []byte, err error) {
	if !h.info.Spec.Purposes.Has(models.PurposeEncrypt) {
		return nil, nil, fmt.Errorf("%w: encrypt with %s", ErrPurposeNotAllowed, h.info.Alias)
	}

	err = h.withKey(func(key []byte) error {
		iv, ciphertext, err = crypto.Seal(key, plaintext)
		return err
	})
	return iv, ciphertext, err
}

// Decrypt authenticates and opens ciphertext (tag appended) under iv.
func (h *KeyHandle) Decrypt(iv, ciphertext []byte) (plaintext []byte, err error) {
	if !h.info.Spec.Purposes.Has(models.PurposeDecrypt) {
		return nil, fmt.Errorf("%w: decrypt with %s", ErrPurposeNotAllowed, h.info.Alias)
	}

	err = h.withKey(func(key []byte) error {
		plaintext, err = crypto.Open(key, iv, ciphertext)
		return err
	})
	return plaintext, err
}

// withKey unseals the enclave for the duration of fn and destroys the locked
// buffer afterwards.
func (h *KeyHandle) withKey(fn func(key []byte) error) error {
	buf, err := h.enclave.Open()
	if err != nil {
		return fmt.Errorf("open key enclave for %s: %w", h.info.Alias, err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}

// generateKeyMaterial validates spec and returns fresh key bytes for it.
// Errors wrap [ErrKeyGenerationFailed].
func generateKeyMaterial(spec models.KeySpec) ([]byte, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyGenerationFailed, err)
	}

	material, err := crypto.RandomKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyGenerationFailed, err)
	}
	return material, nil
}
