// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/99designs/keyring"

	"github.com/MKhiriev/go-sealed-prefs/internal/config"
	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
	"github.com/MKhiriev/go-sealed-prefs/models"
)

// PassphraseFunc supplies a passphrase, prompting the user if needed.
type PassphraseFunc func(prompt string) ([]byte, error)

// keyringItem is the JSON document stored as the keyring item's data.
type keyringItem struct {
	models.VaultKeyInfo
	Material []byte `json:"material"`
}

// KeyringBackend stores keys in the operating system credential store. Each
// key is one keyring item whose key is the alias.
type KeyringBackend struct {
	open   func() (keyring.Keyring, error)
	now    func() time.Time
	logger *logger.Logger
}

// NewKeyringBackend builds a [KeyringBackend] from cfg. passphrase is only
// consulted when the keyring library falls back to its encrypted-file backend.
func NewKeyringBackend(cfg config.Vault, passphrase PassphraseFunc, log *logger.Logger) *KeyringBackend {
	ringCfg := keyring.Config{
		ServiceName:              cfg.ServiceName,
		KeychainName:             cfg.ServiceName,
		KeychainTrustApplication: true,
		LibSecretCollectionName:  cfg.ServiceName,
		KWalletAppID:             cfg.ServiceName,
		KWalletFolder:            cfg.ServiceName,
		WinCredPrefix:            cfg.ServiceName,
		FileDir:                  cfg.KeyringFileDir,
		FilePasswordFunc: func(prompt string) (string, error) {
			if passphrase == nil {
				return "", errors.New("no passphrase source configured")
			}
			p, err := passphrase(prompt)
			if err != nil {
				return "", err
			}
			return string(p), nil
		},
	}
	for _, name := range cfg.KeyringBackends {
		ringCfg.AllowedBackends = append(ringCfg.AllowedBackends, keyring.BackendType(name))
	}

	return newKeyringBackend(func() (keyring.Keyring, error) { return keyring.Open(ringCfg) }, log)
}

func newKeyringBackend(open func() (keyring.Keyring, error), log *logger.Logger) *KeyringBackend {
	return &KeyringBackend{
		open:   open,
		now:    time.Now,
		logger: log,
	}
}

// Open implements [Backend]. It opens the platform keyring anew for every
// session.
func (b *KeyringBackend) Open(_ context.Context) (Session, error) {
	ring, err := b.open()
	if err != nil {
		return nil, fmt.Errorf("%w: open keyring: %w", ErrVaultUnavailable, err)
	}
	return &keyringSession{backend: b, ring: ring}, nil
}

type keyringSession struct {
	backend *KeyringBackend
	ring    keyring.Keyring
}

func (s *keyringSession) ContainsAlias(_ context.Context, alias models.KeyAlias) (bool, error) {
	if s.ring == nil {
		return false, ErrSessionClosed
	}

	_, err := s.ring.Get(alias.String())
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read keyring item: %w", err)
	}
	return true, nil
}

func (s *keyringSession) GenerateAndStoreKey(ctx context.Context, alias models.KeyAlias, spec models.KeySpec) (*KeyHandle, error) {
	exists, err := s.ContainsAlias(ctx, alias)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAliasExists
	}

	material, err := generateKeyMaterial(spec)
	if err != nil {
		return nil, err
	}

	info := newKeyInfo(alias, spec, s.backend.now())
	data, err := json.Marshal(keyringItem{VaultKeyInfo: info, Material: material})
	if err != nil {
		clear(material)
		return nil, fmt.Errorf("encode keyring item: %w", err)
	}

	err = s.ring.Set(keyring.Item{
		Key:         alias.String(),
		Data:        data,
		Label:       alias.String(),
		Description: "go-sealed-prefs entry key",
	})
	if err != nil {
		clear(material)
		return nil, fmt.Errorf("%w: store keyring item: %w", ErrKeyGenerationFailed, err)
	}

	return NewKeyHandle(info, material)
}

func (s *keyringSession) GetKey(_ context.Context, alias models.KeyAlias) (*KeyHandle, error) {
	item, err := s.read(alias)
	if err != nil {
		return nil, err
	}
	return NewKeyHandle(item.VaultKeyInfo, item.Material)
}

func (s *keyringSession) DeleteKey(ctx context.Context, alias models.KeyAlias) error {
	exists, err := s.ContainsAlias(ctx, alias)
	if err != nil {
		return err
	}
	if !exists {
		return ErrKeyNotFound
	}

	if err = s.ring.Remove(alias.String()); err != nil {
		return fmt.Errorf("remove keyring item: %w", err)
	}
	return nil
}

func (s *keyringSession) Aliases(_ context.Context) ([]models.VaultKeyInfo, error) {
	if s.ring == nil {
		return nil, ErrSessionClosed
	}

	keys, err := s.ring.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keyring items: %w", err)
	}

	infos := make([]models.VaultKeyInfo, 0, len(keys))
	for _, key := range keys {
		item, err := s.read(models.KeyAlias(key))
		if err != nil {
			s.backend.logger.Warn().
				Err(err).
				Str("func", "keyringSession.Aliases").
				Str("alias", key).
				Msg("skipping unreadable keyring item")
			continue
		}
		clear(item.Material)
		infos = append(infos, item.VaultKeyInfo)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Alias < infos[j].Alias })

	return infos, nil
}

func (s *keyringSession) Close() error {
	s.ring = nil
	return nil
}

func (s *keyringSession) read(alias models.KeyAlias) (keyringItem, error) {
	if s.ring == nil {
		return keyringItem{}, ErrSessionClosed
	}

	raw, err := s.ring.Get(alias.String())
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return keyringItem{}, ErrKeyNotFound
	}
	if err != nil {
		return keyringItem{}, fmt.Errorf("read keyring item: %w", err)
	}

	var item keyringItem
	if err = json.Unmarshal(raw.Data, &item); err != nil {
		return keyringItem{}, fmt.Errorf("decode keyring item %s: %w", alias, err)
	}
	return item, nil
}
