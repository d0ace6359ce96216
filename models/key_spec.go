// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Purpose is a bitmask of operations a vault key may be used for.
type Purpose uint8

const (
	// PurposeEncrypt allows the key to seal plaintext.
	PurposeEncrypt Purpose = 1 << iota
	// PurposeDecrypt allows the key to open ciphertext.
	PurposeDecrypt
)

// Has reports whether every bit of want is present in p.
func (p Purpose) Has(want Purpose) bool {
	return want != 0 && p&want == want
}

func (p Purpose) String() string {
	var parts []string
	if p&PurposeEncrypt != 0 {
		parts = append(parts, "encrypt")
	}
	if p&PurposeDecrypt != 0 {
		parts = append(parts, "decrypt")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Key algorithm parameters understood by the vault backends.
const (
	AlgorithmAES   = "AES"
	BlockModeGCM   = "GCM"
	PaddingNone    = "NoPadding"
	KeySizeAES256  = 256
	GCMNonceSize   = 12
	GCMTagSize     = 16
	GCMTagSizeBits = GCMTagSize * 8
)

// KeySpec describes the key a vault must generate for an alias. Only
// [DefaultKeySpec] is accepted by [KeySpec.Validate]; the struct exists so
// backends can persist and report what they were asked for.
type KeySpec struct {
	Algorithm                    string  `json:"algorithm"`
	KeySize                      int     `json:"key_size"`
	BlockMode                    string  `json:"block_mode"`
	Padding                      string  `json:"padding"`
	Purposes                     Purpose `json:"purposes"`
	RandomizedEncryptionRequired bool    `json:"randomized_encryption_required"`
	UserAuthenticationRequired   bool    `json:"user_authentication_required"`
}

// DefaultKeySpec returns the AES-256/GCM/NoPadding spec used for every
// envelope entry: encrypt and decrypt purposes, randomized IVs enforced and
// no user-presence gate.
func DefaultKeySpec() KeySpec {
	return KeySpec{
		Algorithm:                    AlgorithmAES,
		KeySize:                      KeySizeAES256,
		BlockMode:                    BlockModeGCM,
		Padding:                      PaddingNone,
		Purposes:                     PurposeEncrypt | PurposeDecrypt,
		RandomizedEncryptionRequired: true,
		UserAuthenticationRequired:   false,
	}
}

// KeySizeBytes returns the key length in bytes.
func (s KeySpec) KeySizeBytes() int {
	return s.KeySize / 8
}

// Validate checks that the spec is one the vault can generate. It returns an
// error wrapping [ErrUnsupportedKeySpec] otherwise.
func (s KeySpec) Validate() error {
	switch {
	case s.Algorithm != AlgorithmAES:
		return fmt.Errorf("%w: algorithm %q", ErrUnsupportedKeySpec, s.Algorithm)
	case s.KeySize != KeySizeAES256:
		return fmt.Errorf("%w: key size %d", ErrUnsupportedKeySpec, s.KeySize)
	case s.BlockMode != BlockModeGCM:
		return fmt.Errorf("%w: block mode %q", ErrUnsupportedKeySpec, s.BlockMode)
	case s.Padding != PaddingNone:
		return fmt.Errorf("%w: padding %q", ErrUnsupportedKeySpec, s.Padding)
	case s.Purposes == 0 || s.Purposes&^(PurposeEncrypt|PurposeDecrypt) != 0:
		return fmt.Errorf("%w: purposes %s", ErrUnsupportedKeySpec, s.Purposes)
	case !s.RandomizedEncryptionRequired:
		return fmt.Errorf("%w: randomized encryption must be required", ErrUnsupportedKeySpec)
	case s.UserAuthenticationRequired:
		return fmt.Errorf("%w: user authentication is not supported", ErrUnsupportedKeySpec)
	}
	return nil
}
