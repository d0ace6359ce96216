package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sealed-prefs/internal/config"
	"github.com/MKhiriev/go-sealed-prefs/internal/crypto"
	"github.com/MKhiriev/go-sealed-prefs/internal/envelope"
	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
	"github.com/MKhiriev/go-sealed-prefs/internal/store"
	"github.com/MKhiriev/go-sealed-prefs/internal/vault"
)

// ErrUnknownVaultBackend is returned for a vault backend NewApp cannot build.
var ErrUnknownVaultBackend = errors.New("unknown vault backend")

// App owns the store, the vault and the envelope built on top of them.
type App struct {
	Envelope *envelope.Store
	Vault    *vault.KeyVault

	storage *store.Storage
	logger  *logger.Logger
}

// NewApp builds an [App] from cfg. prompt is asked for the vault passphrase
// when the configuration does not carry one; it may be nil when no
// passphrase is ever needed.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, prompt vault.PassphraseFunc, log *logger.Logger) (*App, error) {
	backend, err := newVaultBackend(cfg.Vault, passphraseFunc(cfg.Vault, prompt), log)
	if err != nil {
		return nil, err
	}

	storage, err := store.NewStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Str("func", "NewApp").Str("driver", cfg.Storage.Driver).Msg("failed to open backing store")
		return nil, fmt.Errorf("open backing store: %w", err)
	}

	keys := vault.New(backend, log)
	env := envelope.New(storage.Preferences, keys, log,
		envelope.WithAliasPrefix(cfg.App.AliasPrefix),
		envelope.WithNamespace(cfg.Storage.Namespace),
		envelope.WithKeyPurge(cfg.App.PurgeKeys),
	)

	log.Debug().
		Str("func", "NewApp").
		Str("driver", cfg.Storage.Driver).
		Str("namespace", cfg.Storage.Namespace).
		Str("vault", cfg.Vault.Backend).
		Msg("application initialized")

	return &App{
		Envelope: env,
		Vault:    keys,
		storage:  storage,
		logger:   log,
	}, nil
}

// Close releases the backing store.
func (a *App) Close() error {
	return a.storage.Close()
}

func newVaultBackend(cfg config.Vault, passphrase vault.PassphraseFunc, log *logger.Logger) (vault.Backend, error) {
	switch cfg.Backend {
	case config.VaultBackendKeyring:
		return vault.NewKeyringBackend(cfg, passphrase, log), nil
	case config.VaultBackendFile:
		return vault.NewFileBackend(cfg, passphrase, crypto.NewKeyWrapService(), log), nil
	case config.VaultBackendMemory:
		return vault.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVaultBackend, cfg.Backend)
	}
}

// passphraseFunc prefers the configured passphrase over prompting.
func passphraseFunc(cfg config.Vault, prompt vault.PassphraseFunc) vault.PassphraseFunc {
	if cfg.Passphrase != "" {
		return func(string) ([]byte, error) {
			return []byte(cfg.Passphrase), nil
		}
	}
	if prompt == nil {
		return func(string) ([]byte, error) {
			return nil, errors.New("no vault passphrase configured")
		}
	}
	return prompt
}
