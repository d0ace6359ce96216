// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
	"github.com/MKhiriev/go-sealed-prefs/internal/store"
	"github.com/MKhiriev/go-sealed-prefs/internal/vault"
	"github.com/MKhiriev/go-sealed-prefs/models"
)

// Store seals entries into a [store.Preferences] namespace with per-entry
// keys from a [KeyProvider].
//
// Store holds no locks. Operations on different names are independent;
// concurrent writes to the same name are last-writer-wins.
type Store struct {
	prefs       store.Preferences
	keys        KeyProvider
	logger      *logger.Logger
	aliasPrefix string
	namespace   string
	purgeKeys   bool
}

// New builds a Store over prefs and keys.
func New(prefs store.Preferences, keys KeyProvider, logger *logger.Logger, opts ...Option) *Store {
	s := &Store{
		prefs:       prefs,
		keys:        keys,
		logger:      logger,
		aliasPrefix: DefaultAliasPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Alias returns the vault alias of the entry called name.
func (s *Store) Alias(name string) models.KeyAlias {
	return models.NewScopedKeyAlias(s.aliasPrefix, s.namespace, name)
}

// Store encrypts plaintext under the key of name and writes the record,
// replacing any previous value. Vault and backing store errors are returned.
func (s *Store) Store(ctx context.Context, name string, plaintext []byte) error {
	if name == "" {
		return ErrEmptyName
	}
	alias := s.Alias(name)

	handle, err := s.keys.GetOrCreateKey(ctx, alias)
	if err != nil {
		s.logger.Err(err).Str("func", "Store.Store").Str("name", name).Msg("failed to obtain entry key")
		return fmt.Errorf("obtain key for %q: %w", name, err)
	}

	iv, ciphertext, err := handle.Encrypt(plaintext)
	if err != nil {
		s.logger.Err(err).Str("func", "Store.Store").Str("name", name).Msg("failed to encrypt entry")
		return fmt.Errorf("%w: %q: %w", ErrEncryptionFailed, name, err)
	}

	record := models.EncryptedRecord{IV: iv, Ciphertext: ciphertext}
	if err = s.prefs.Put(ctx, name, record.Encode()); err != nil {
		s.logger.Err(err).Str("func", "Store.Store").Str("name", name).Msg("failed to write entry")
		return fmt.Errorf("write %q: %w", name, err)
	}

	s.logger.Debug().Str("func", "Store.Store").Str("name", name).Int("size", len(plaintext)).Msg("entry stored")
	return nil
}

// Retrieve returns the plaintext stored under name. The bool is false when
// the entry is absent or cannot be read for any reason; use [Store.Lookup]
// to tell those cases apart.
func (s *Store) Retrieve(ctx context.Context, name string) ([]byte, bool) {
	res := s.Lookup(ctx, name)

	switch res.Status {
	case models.StatusFound:
		return res.Data, true
	case models.StatusNotFound:
		s.logger.Debug().Str("func", "Store.Retrieve").Str("name", name).Msg("entry not found")
	case models.StatusCorrupted:
		s.logger.Warn().Err(res.Err).Str("func", "Store.Retrieve").Str("name", name).Msg("entry unreadable, treated as absent")
	default:
		s.logger.Err(res.Err).Str("func", "Store.Retrieve").Str("name", name).Str("status", res.Status.String()).Msg("entry lookup failed, treated as absent")
	}
	return nil, false
}

// Lookup reads and decrypts name, reporting why it failed when it does.
func (s *Store) Lookup(ctx context.Context, name string) Result {
	if name == "" {
		return Result{Status: models.StatusNotFound}
	}

	encoded, ok, err := s.prefs.Get(ctx, name)
	if err != nil {
		return Result{Status: models.StatusUnavailable, Err: fmt.Errorf("read %q: %w", name, err)}
	}
	if !ok {
		return Result{Status: models.StatusNotFound}
	}

	record, err := models.DecodeRecord(encoded)
	if err != nil {
		return Result{Status: models.StatusCorrupted, Err: err}
	}

	handle, err := s.keys.UseKeyFor(ctx, s.Alias(name), models.PurposeDecrypt)
	if err != nil {
		if errors.Is(err, vault.ErrVaultUnavailable) || ctx.Err() != nil {
			return Result{Status: models.StatusUnavailable, Err: err}
		}
		return Result{Status: models.StatusCorrupted, Err: fmt.Errorf("%w: %w", ErrDecryptionFailed, err)}
	}

	plaintext, err := handle.Decrypt(record.IV, record.Ciphertext)
	if err != nil {
		return Result{Status: models.StatusCorrupted, Err: fmt.Errorf("%w: %w", ErrDecryptionFailed, err)}
	}

	return Result{Status: models.StatusFound, Data: plaintext}
}

// Remove deletes the record of name. Removing an absent entry is not an
// error. With [WithKeyPurge] the entry key is deleted as well.
func (s *Store) Remove(ctx context.Context, name string) error {
	if err := s.prefs.Remove(ctx, name); err != nil {
		s.logger.Err(err).Str("func", "Store.Remove").Str("name", name).Msg("failed to remove entry")
		return fmt.Errorf("remove %q: %w", name, err)
	}

	if s.purgeKeys {
		return s.purgeKey(ctx, name)
	}
	return nil
}

// ClearAll deletes every record in the namespace. With [WithKeyPurge] the
// keys of the names present before the clear are deleted too.
func (s *Store) ClearAll(ctx context.Context) error {
	var names []string
	if s.purgeKeys {
		var err error
		if names, err = s.prefs.Keys(ctx); err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
	}

	if err := s.prefs.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "Store.ClearAll").Msg("failed to clear entries")
		return fmt.Errorf("clear entries: %w", err)
	}

	var errs []error
	for _, name := range names {
		if err := s.purgeKey(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Names lists the names of the stored entries.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	names, err := s.prefs.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return names, nil
}

// Contains reports whether a record is stored under name without decrypting
// it.
func (s *Store) Contains(ctx context.Context, name string) (bool, error) {
	_, ok, err := s.prefs.Get(ctx, name)
	if err != nil {
		return false, fmt.Errorf("read %q: %w", name, err)
	}
	return ok, nil
}

func (s *Store) purgeKey(ctx context.Context, name string) error {
	alias := s.Alias(name)
	if err := s.keys.DeleteKey(ctx, alias); err != nil && !errors.Is(err, vault.ErrKeyNotFound) {
		s.logger.Err(err).Str("func", "Store.purgeKey").Str("alias", alias.String()).Msg("failed to delete entry key")
		return fmt.Errorf("delete key of %q: %w", name, err)
	}
	return nil
}
