// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

var (
	// ErrVaultUnavailable is returned when the platform vault cannot be opened.
	// It is fatal for the operation that hit it.
	ErrVaultUnavailable = errors.New("secure vault unavailable")

	// ErrKeyGenerationFailed is returned when the vault rejects the key
	// parameters or cannot produce key material.
	ErrKeyGenerationFailed = errors.New("key generation failed")

	// ErrKeyNotFound is returned when no key is stored under an alias.
	ErrKeyNotFound = errors.New("key not found in vault")

	// ErrAliasExists is returned by a backend when a key is already stored
	// under the alias it was asked to create.
	ErrAliasExists = errors.New("key alias already exists")

	// ErrPurposeNotAllowed is returned when a key is used for an operation
	// its spec does not list.
	ErrPurposeNotAllowed = errors.New("key purpose not allowed")

	// ErrWrongPassphrase is returned by [FileBackend] when the passphrase does
	// not match the one the vault was created with. It is always wrapped
	// together with [ErrVaultUnavailable].
	ErrWrongPassphrase = errors.New("wrong vault passphrase")

	// ErrSessionClosed is returned when a closed session is used.
	ErrSessionClosed = errors.New("vault session closed")
)
