package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sealed-prefs/internal/config"
	"github.com/MKhiriev/go-sealed-prefs/internal/envelope"
	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
	"github.com/MKhiriev/go-sealed-prefs/internal/store"
	"github.com/MKhiriev/go-sealed-prefs/internal/vault"
)

func ephemeralConfig() *config.StructuredConfig {
	cfg := config.Defaults()
	cfg.Storage.Driver = config.DriverMemory
	cfg.Vault.Backend = config.VaultBackendMemory
	return cfg
}

func TestNewApp_Ephemeral(t *testing.T) {
	ctx := context.Background()

	a, err := NewApp(ctx, ephemeralConfig(), nil, logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Envelope.Store(ctx, "token", []byte("abc123")))
	got, ok := a.Envelope.Retrieve(ctx, "token")
	require.True(t, ok)
	assert.Equal(t, []byte("abc123"), got)

	infos, err := a.Vault.Aliases(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "sealed_prefs_secure_prefs.token", infos[0].Alias.String())
}

func TestNewApp_SQLiteAndFileVault(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg := config.Defaults()
	cfg.Storage.DB.DSN = filepath.Join(dir, "prefs.db")
	cfg.Vault.Backend = config.VaultBackendFile
	cfg.Vault.FilePath = filepath.Join(dir, "vault.json")
	cfg.Vault.Passphrase = "correct horse"
	cfg.App.PurgeKeys = true

	a, err := NewApp(ctx, cfg, nil, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, a.Envelope.Store(ctx, "token", []byte("abc123")))
	require.NoError(t, a.Close())

	reopened, err := NewApp(ctx, cfg, nil, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.Envelope.Retrieve(ctx, "token")
	require.True(t, ok)
	assert.Equal(t, []byte("abc123"), got)

	require.NoError(t, reopened.Envelope.Remove(ctx, "token"))
	infos, err := reopened.Vault.Aliases(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestNewApp_PromptUsedWithoutConfiguredPassphrase(t *testing.T) {
	ctx := context.Background()
	cfg := ephemeralConfig()
	cfg.Vault.Backend = config.VaultBackendFile
	cfg.Vault.FilePath = filepath.Join(t.TempDir(), "vault.json")

	prompted := 0
	prompt := func(string) ([]byte, error) {
		prompted++
		return []byte("from prompt"), nil
	}

	a, err := NewApp(ctx, cfg, prompt, logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Envelope.Store(ctx, "token", []byte("x")))
	assert.Equal(t, 1, prompted)
}

func TestNewApp_NoPassphraseAvailable(t *testing.T) {
	ctx := context.Background()
	cfg := ephemeralConfig()
	cfg.Vault.Backend = config.VaultBackendFile
	cfg.Vault.FilePath = filepath.Join(t.TempDir(), "vault.json")

	a, err := NewApp(ctx, cfg, nil, logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	err = a.Envelope.Store(ctx, "token", []byte("x"))
	assert.ErrorIs(t, err, vault.ErrVaultUnavailable)
	assert.Equal(t, MsgVaultUnavailable, UserMessage(err))
}

func TestNewApp_UnknownVaultBackend(t *testing.T) {
	cfg := ephemeralConfig()
	cfg.Vault.Backend = "hsm"

	_, err := NewApp(context.Background(), cfg, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownVaultBackend)
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := ephemeralConfig()
	cfg.Storage.Driver = "mysql"

	_, err := NewApp(context.Background(), cfg, nil, logger.Nop())
	assert.ErrorIs(t, err, store.ErrUnknownDriver)
}

func TestNewVaultBackend(t *testing.T) {
	log := logger.Nop()

	b, err := newVaultBackend(config.Vault{Backend: config.VaultBackendKeyring, ServiceName: "svc"}, nil, log)
	require.NoError(t, err)
	assert.IsType(t, &vault.KeyringBackend{}, b)

	b, err = newVaultBackend(config.Vault{Backend: config.VaultBackendFile, FilePath: "v.json"}, nil, log)
	require.NoError(t, err)
	assert.IsType(t, &vault.FileBackend{}, b)

	b, err = newVaultBackend(config.Vault{Backend: config.VaultBackendMemory}, nil, log)
	require.NoError(t, err)
	assert.IsType(t, &vault.MemoryBackend{}, b)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: %w", vault.ErrVaultUnavailable, vault.ErrWrongPassphrase), MsgWrongPassphrase},
		{fmt.Errorf("open: %w", vault.ErrVaultUnavailable), MsgVaultUnavailable},
		{vault.ErrKeyGenerationFailed, MsgKeyGenerationFailed},
		{ErrEntryNotFound, MsgEntryNotFound},
		{envelope.ErrEmptyName, MsgEmptyName},
		{fmt.Errorf("x: %w", config.ErrInvalidVaultConfigs), MsgInvalidConfiguration},
		{fmt.Errorf("x: %w", store.ErrExecutingStatement), MsgStorageFailure},
		{errors.New("boom"), MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
