package envelope

import (
	"context"

	"github.com/MKhiriev/go-sealed-prefs/internal/vault"
	"github.com/MKhiriev/go-sealed-prefs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/key_provider_mock.go -package=mock

// KeyProvider hands out per-entry vault keys. *vault.KeyVault implements it.
type KeyProvider interface {
	GetOrCreateKey(ctx context.Context, alias models.KeyAlias) (*vault.KeyHandle, error)
	UseKeyFor(ctx context.Context, alias models.KeyAlias, purpose models.Purpose) (*vault.KeyHandle, error)
	DeleteKey(ctx context.Context, alias models.KeyAlias) error
}
