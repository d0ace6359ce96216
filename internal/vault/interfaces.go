package vault

import (
	"context"

	"github.com/MKhiriev/go-sealed-prefs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// Backend is a platform key vault. Open acquires a session; the caller must
// Close it before returning.
type Backend interface {
	Open(ctx context.Context) (Session, error)
}

// Session is one scoped use of a [Backend].
type Session interface {
	// ContainsAlias reports whether a key is stored under alias.
	ContainsAlias(ctx context.Context, alias models.KeyAlias) (bool, error)

	// GenerateAndStoreKey creates a key matching spec and stores it under
	// alias. It fails with [ErrAliasExists] if alias is taken and with
	// [ErrKeyGenerationFailed] if spec is rejected.
	GenerateAndStoreKey(ctx context.Context, alias models.KeyAlias, spec models.KeySpec) (*KeyHandle, error)

	// GetKey returns a handle to the key stored under alias or
	// [ErrKeyNotFound].
	GetKey(ctx context.Context, alias models.KeyAlias) (*KeyHandle, error)

	// DeleteKey destroys the key stored under alias or returns
	// [ErrKeyNotFound].
	DeleteKey(ctx context.Context, alias models.KeyAlias) error

	// Aliases lists metadata of every key in the vault.
	Aliases(ctx context.Context) ([]models.VaultKeyInfo, error)

	// Close releases the session. It is safe to call more than once.
	Close() error
}
