// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
	"github.com/MKhiriev/go-sealed-prefs/models"
)

// KeyVault is the adapter between the envelope store and a [Backend].
//
// It owns no long-lived vault handle: each method opens a session, uses it and
// closes it before returning. Concurrent GetOrCreateKey calls for the same
// alias inside one process share a single backend round trip, so they can
// never produce two different keys.
type KeyVault struct {
	backend Backend
	logger  *logger.Logger
	group   singleflight.Group
}

// New wraps backend in a [KeyVault].
func New(backend Backend, logger *logger.Logger) *KeyVault {
	return &KeyVault{
		backend: backend,
		logger:  logger,
	}
}

// GetOrCreateKey returns the key stored under alias, generating an
// AES-256/GCM key with [models.DefaultKeySpec] if there is none. The call is
// idempotent.
//
// Concurrent callers for one alias share a single vault round trip. That
// round trip is detached from the cancellation of any single caller; each
// caller stops waiting when its own ctx is done.
func (v *KeyVault) GetOrCreateKey(ctx context.Context, alias models.KeyAlias) (*KeyHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := v.group.DoChan(alias.String(), func() (any, error) {
		return v.getOrCreateKey(context.WithoutCancel(ctx), alias)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	if res.Shared {
		v.logger.Debug().
			Str("func", "KeyVault.GetOrCreateKey").
			Str("alias", alias.String()).
			Msg("key lookup shared with a concurrent caller")
	}

	return res.Val.(*KeyHandle), nil
}

func (v *KeyVault) getOrCreateKey(ctx context.Context, alias models.KeyAlias) (handle *KeyHandle, err error) {
	session, err := v.open(ctx)
	if err != nil {
		return nil, err
	}
	defer v.release(session, &err)

	exists, err := session.ContainsAlias(ctx, alias)
	if err != nil {
		return nil, fmt.Errorf("check alias %s: %w", alias, err)
	}
	if exists {
		return session.GetKey(ctx, alias)
	}

	handle, err = session.GenerateAndStoreKey(ctx, alias, models.DefaultKeySpec())
	if errors.Is(err, ErrAliasExists) {
		// another process created it between the check and the insert
		v.logger.Debug().
			Str("func", "KeyVault.getOrCreateKey").
			Str("alias", alias.String()).
			Msg("alias created concurrently, reusing existing key")
		return session.GetKey(ctx, alias)
	}
	if err != nil {
		v.logger.Err(err).
			Str("func", "KeyVault.getOrCreateKey").
			Str("alias", alias.String()).
			Msg("failed to generate vault key")
		return nil, fmt.Errorf("generate key %s: %w", alias, err)
	}

	v.logger.Info().
		Str("func", "KeyVault.getOrCreateKey").
		Str("alias", alias.String()).
		Str("key_id", handle.Info().ID).
		Msg("generated new vault key")

	return handle, nil
}

// UseKeyFor returns the existing key stored under alias after checking that
// its spec allows purpose. It never creates a key.
func (v *KeyVault) UseKeyFor(ctx context.Context, alias models.KeyAlias, purpose models.Purpose) (handle *KeyHandle, err error) {
	session, err := v.open(ctx)
	if err != nil {
		return nil, err
	}
	defer v.release(session, &err)

	handle, err = session.GetKey(ctx, alias)
	if err != nil {
		return nil, fmt.Errorf("get key %s: %w", alias, err)
	}

	if !handle.Info().Spec.Purposes.Has(purpose) {
		return nil, fmt.Errorf("%w: %s does not allow %s", ErrPurposeNotAllowed, alias, purpose)
	}

	return handle, nil
}

// DeleteKey destroys the key stored under alias.
func (v *KeyVault) DeleteKey(ctx context.Context, alias models.KeyAlias) (err error) {
	session, err := v.open(ctx)
	if err != nil {
		return err
	}
	defer v.release(session, &err)

	if err = session.DeleteKey(ctx, alias); err != nil {
		return fmt.Errorf("delete key %s: %w", alias, err)
	}

	v.logger.Info().
		Str("func", "KeyVault.DeleteKey").
		Str("alias", alias.String()).
		Msg("deleted vault key")

	return nil
}

// Aliases lists the metadata of every key in the vault.
func (v *KeyVault) Aliases(ctx context.Context) (infos []models.VaultKeyInfo, err error) {
	session, err := v.open(ctx)
	if err != nil {
		return nil, err
	}
	defer v.release(session, &err)

	infos, err = session.Aliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	return infos, nil
}

func (v *KeyVault) open(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	session, err := v.backend.Open(ctx)
	if err != nil {
		v.logger.Err(err).
			Str("func", "KeyVault.open").
			Msg("failed to open vault session")
		if errors.Is(err, ErrVaultUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrVaultUnavailable, err)
	}

	return session, nil
}

// release closes session and joins a close failure into *errp.
func (v *KeyVault) release(session Session, errp *error) {
	if cerr := session.Close(); cerr != nil {
		v.logger.Err(cerr).
			Str("func", "KeyVault.release").
			Msg("failed to close vault session")
		*errp = errors.Join(*errp, fmt.Errorf("close vault session: %w", cerr))
	}
}

// newKeyInfo builds metadata for a freshly generated key.
func newKeyInfo(alias models.KeyAlias, spec models.KeySpec, now time.Time) models.VaultKeyInfo {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return models.VaultKeyInfo{
		Alias:     alias,
		ID:        id.String(),
		Spec:      spec,
		CreatedAt: now.UTC(),
	}
}
