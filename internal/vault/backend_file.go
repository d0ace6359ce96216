// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-sealed-prefs/internal/config"
	"github.com/MKhiriev/go-sealed-prefs/internal/crypto"
	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
	"github.com/MKhiriev/go-sealed-prefs/models"
)

const (
	fileVaultVersion = 1
	fileVaultAuth    = "go-sealed-prefs/file-vault/auth"

	// passphrasePrompt is handed to the [PassphraseFunc]; the prompt adds its
	// own punctuation.
	passphrasePrompt = "Vault passphrase"
)

// fileVaultState is the on-disk document of a [FileBackend].
type fileVaultState struct {
	Version  int                               `json:"version"`
	Salt     []byte                            `json:"salt"`
	AuthHash []byte                            `json:"auth_hash"`
	Keys     map[models.KeyAlias]fileVaultKey `json:"keys"`
}

type fileVaultKey struct {
	models.VaultKeyInfo
	Wrapped []byte `json:"wrapped"`
}

// FileBackend keeps keys in a JSON file. Every key is wrapped with a KEK
// derived from a passphrase and the vault's salt by Argon2id; the file stores
// only the salt, an auth hash of the KEK and the wrapped keys.
//
// Sessions are serialised inside the process: Open takes the backend mutex
// and Close releases it. The derived KEK is cached in a memguard enclave
// after the first successful open so the passphrase is asked for once.
type FileBackend struct {
	path       string
	passphrase PassphraseFunc
	wrap       crypto.KeyWrapService
	logger     *logger.Logger
	now        func() time.Time

	mu      sync.Mutex
	kek     *memguard.Enclave
	kekSalt []byte
}

// NewFileBackend returns a [FileBackend] for the file at cfg.FilePath. The
// file is created with a fresh salt on first open.
func NewFileBackend(cfg config.Vault, passphrase PassphraseFunc, wrap crypto.KeyWrapService, log *logger.Logger) *FileBackend {
	return &FileBackend{
		path:       cfg.FilePath,
		passphrase: passphrase,
		wrap:       wrap,
		logger:     log,
		now:        time.Now,
	}
}

// Open implements [Backend].
func (b *FileBackend) Open(_ context.Context) (Session, error) {
	b.mu.Lock()

	state, err := b.load()
	if err != nil {
		b.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", ErrVaultUnavailable, err)
	}

	kek, err := b.unlock(state)
	if err != nil {
		b.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", ErrVaultUnavailable, err)
	}

	return &fileSession{backend: b, state: state, kek: kek}, nil
}

// load reads the vault file. A missing file yields a new, unpersisted state
// with a fresh salt and no auth hash.
func (b *FileBackend) load() (*fileVaultState, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		salt, err := b.wrap.NewSalt()
		if err != nil {
			return nil, fmt.Errorf("create vault salt: %w", err)
		}
		return &fileVaultState{
			Version: fileVaultVersion,
			Salt:    salt,
			Keys:    make(map[models.KeyAlias]fileVaultKey),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read vault file: %w", err)
	}

	var state fileVaultState
	if err = json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode vault file: %w", err)
	}
	if state.Version != fileVaultVersion {
		return nil, fmt.Errorf("unsupported vault file version %d", state.Version)
	}
	if len(state.Salt) != crypto.SaltSize || len(state.AuthHash) == 0 {
		return nil, errors.New("vault file is missing its salt or auth hash")
	}
	if state.Keys == nil {
		state.Keys = make(map[models.KeyAlias]fileVaultKey)
	}

	return &state, nil
}

// unlock returns the KEK for state in a locked buffer, deriving and verifying
// it on first use. A fresh state gets its auth hash set and is persisted.
func (b *FileBackend) unlock(state *fileVaultState) (*memguard.LockedBuffer, error) {
	if b.kek != nil && bytes.Equal(b.kekSalt, state.Salt) {
		buf, err := b.kek.Open()
		if err != nil {
			return nil, fmt.Errorf("open cached KEK: %w", err)
		}
		return buf, nil
	}

	if b.passphrase == nil {
		return nil, errors.New("no passphrase source configured")
	}
	passphrase, err := b.passphrase(passphrasePrompt)
	if err != nil {
		return nil, fmt.Errorf("read passphrase: %w", err)
	}
	if len(passphrase) == 0 {
		return nil, errors.New("empty passphrase")
	}

	kek := b.wrap.DeriveKEK(passphrase, state.Salt)
	memguard.WipeBytes(passphrase)

	authHash := b.wrap.AuthHash(kek, fileVaultAuth)
	if state.AuthHash == nil {
		state.AuthHash = authHash
		if err = b.persist(state); err != nil {
			memguard.WipeBytes(kek)
			return nil, err
		}
		b.logger.Info().
			Str("func", "FileBackend.unlock").
			Str("path", b.path).
			Msg("created new file vault")
	} else if subtle.ConstantTimeCompare(authHash, state.AuthHash) != 1 {
		memguard.WipeBytes(kek)
		return nil, ErrWrongPassphrase
	}

	b.kek = memguard.NewEnclave(append([]byte(nil), kek...))
	b.kekSalt = append([]byte(nil), state.Salt...)

	return memguard.NewBufferFromBytes(kek), nil
}

// persist writes state atomically: a temp file in the same directory is
// written, synced and renamed over the vault file.
func (b *FileBackend) persist(state *fileVaultState) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp vault file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp vault file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp vault file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp vault file: %w", err)
	}
	if err = os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("replace vault file: %w", err)
	}

	return nil
}

type fileSession struct {
	backend *FileBackend
	state   *fileVaultState
	kek     *memguard.LockedBuffer
	once    sync.Once
	closed  bool
}

func (s *fileSession) ContainsAlias(_ context.Context, alias models.KeyAlias) (bool, error) {
	if s.closed {
		return false, ErrSessionClosed
	}

	_, ok := s.state.Keys[alias]
	return ok, nil
}

func (s *fileSession) GenerateAndStoreKey(_ context.Context, alias models.KeyAlias, spec models.KeySpec) (*KeyHandle, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if _, ok := s.state.Keys[alias]; ok {
		return nil, ErrAliasExists
	}

	material, err := generateKeyMaterial(spec)
	if err != nil {
		return nil, err
	}

	wrapped, err := s.backend.wrap.WrapKey(material, s.kek.Bytes())
	if err != nil {
		clear(material)
		return nil, fmt.Errorf("%w: %w", ErrKeyGenerationFailed, err)
	}

	info := newKeyInfo(alias, spec, s.backend.now())
	s.state.Keys[alias] = fileVaultKey{VaultKeyInfo: info, Wrapped: wrapped}
	if err = s.backend.persist(s.state); err != nil {
		delete(s.state.Keys, alias)
		clear(material)
		return nil, fmt.Errorf("%w: %w", ErrKeyGenerationFailed, err)
	}

	return NewKeyHandle(info, material)
}

func (s *fileSession) GetKey(_ context.Context, alias models.KeyAlias) (*KeyHandle, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}

	entry, ok := s.state.Keys[alias]
	if !ok {
		return nil, ErrKeyNotFound
	}

	material, err := s.backend.wrap.UnwrapKey(entry.Wrapped, s.kek.Bytes())
	if err != nil {
		return nil, fmt.Errorf("unwrap key %s: %w", alias, err)
	}

	return NewKeyHandle(entry.VaultKeyInfo, material)
}

func (s *fileSession) DeleteKey(_ context.Context, alias models.KeyAlias) error {
	if s.closed {
		return ErrSessionClosed
	}

	entry, ok := s.state.Keys[alias]
	if !ok {
		return ErrKeyNotFound
	}

	delete(s.state.Keys, alias)
	if err := s.backend.persist(s.state); err != nil {
		s.state.Keys[alias] = entry
		return err
	}
	return nil
}

func (s *fileSession) Aliases(_ context.Context) ([]models.VaultKeyInfo, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}

	infos := make([]models.VaultKeyInfo, 0, len(s.state.Keys))
	for _, entry := range s.state.Keys {
		infos = append(infos, entry.VaultKeyInfo)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Alias < infos[j].Alias })

	return infos, nil
}

func (s *fileSession) Close() error {
	s.once.Do(func() {
		s.closed = true
		s.kek.Destroy()
		s.backend.mu.Unlock()
	})
	return nil
}
