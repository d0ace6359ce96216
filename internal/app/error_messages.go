// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires configuration, the backing store and the key vault into
// a ready-to-use envelope store, and maps its errors to the messages shown
// to CLI users.
package app

import (
	"errors"

	"github.com/MKhiriev/go-sealed-prefs/internal/config"
	"github.com/MKhiriev/go-sealed-prefs/internal/envelope"
	"github.com/MKhiriev/go-sealed-prefs/internal/store"
	"github.com/MKhiriev/go-sealed-prefs/internal/vault"
)

const (
	// MsgInvalidConfiguration is shown when the merged configuration fails
	// validation.
	MsgInvalidConfiguration = "invalid configuration"

	// MsgVaultUnavailable is shown when the key vault cannot be opened.
	MsgVaultUnavailable = "secure vault is unavailable"

	// MsgWrongPassphrase is shown when the file vault rejects the passphrase.
	MsgWrongPassphrase = "wrong vault passphrase"

	// MsgKeyGenerationFailed is shown when the vault refuses to create a key.
	MsgKeyGenerationFailed = "vault refused to create a key"

	// MsgEntryNotFound is shown when a read finds no readable entry.
	MsgEntryNotFound = "entry not found"

	// MsgEmptyName is shown when an entry name is missing.
	MsgEmptyName = "entry name must not be empty"

	// MsgStorageFailure is shown when the backing store rejects a call.
	MsgStorageFailure = "backing store error"

	// MsgInternalError is shown for anything not listed above.
	MsgInternalError = "internal error"
)

// ErrEntryNotFound is returned by commands that expected an entry to exist.
var ErrEntryNotFound = errors.New("entry not found")

// UserMessage returns the short message for err. The order matters: a wrong
// passphrase is also a vault unavailability.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vault.ErrWrongPassphrase):
		return MsgWrongPassphrase
	case errors.Is(err, vault.ErrVaultUnavailable):
		return MsgVaultUnavailable
	case errors.Is(err, vault.ErrKeyGenerationFailed):
		return MsgKeyGenerationFailed
	case errors.Is(err, ErrEntryNotFound):
		return MsgEntryNotFound
	case errors.Is(err, envelope.ErrEmptyName):
		return MsgEmptyName
	case errors.Is(err, config.ErrInvalidAppConfigs),
		errors.Is(err, config.ErrInvalidStorageConfigs),
		errors.Is(err, config.ErrInvalidVaultConfigs),
		errors.Is(err, config.ErrInvalidLogConfigs):
		return MsgInvalidConfiguration
	case errors.Is(err, store.ErrExecutingQuery),
		errors.Is(err, store.ErrExecutingStatement),
		errors.Is(err, store.ErrUnknownDriver):
		return MsgStorageFailure
	default:
		return MsgInternalError
	}
}
