// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrMalformedRecord is returned when a stored value cannot be split into
	// IV and ciphertext+tag.
	ErrMalformedRecord = errors.New("malformed encrypted record")

	// ErrUnsupportedKeySpec is returned when a key spec asks for parameters
	// the vault does not generate.
	ErrUnsupportedKeySpec = errors.New("unsupported key spec")
)
