// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"fmt"
)

// EncryptedRecord is the persisted form of one logical entry.
//
// On disk it is base64(IV || Ciphertext), where Ciphertext already carries the
// 16-byte GCM authentication tag. The format has no version byte and no
// algorithm identifier.
type EncryptedRecord struct {
	IV         []byte
	Ciphertext []byte
}

// Encode frames the record and returns its standard base64 representation.
func (r EncryptedRecord) Encode() string {
	blob := make([]byte, 0, len(r.IV)+len(r.Ciphertext))
	blob = append(blob, r.IV...)
	blob = append(blob, r.Ciphertext...)
	return base64.StdEncoding.EncodeToString(blob)
}

// DecodeRecord parses a stored value back into IV and ciphertext+tag. A value
// that is not valid base64, or whose decoded length does not exceed the IV
// length, yields an error wrapping [ErrMalformedRecord].
func DecodeRecord(encoded string) (EncryptedRecord, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return EncryptedRecord{}, fmt.Errorf("%w: decode base64: %v", ErrMalformedRecord, err)
	}

	if len(blob) <= GCMNonceSize {
		return EncryptedRecord{}, fmt.Errorf("%w: %d bytes", ErrMalformedRecord, len(blob))
	}

	return EncryptedRecord{
		IV:         blob[:GCMNonceSize],
		Ciphertext: blob[GCMNonceSize:],
	}, nil
}
