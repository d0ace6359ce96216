package vault

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sealed-prefs/internal/config"
	"github.com/MKhiriev/go-sealed-prefs/internal/crypto"
	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
	"github.com/MKhiriev/go-sealed-prefs/models"
)

func fixedPassphrase(p string, calls *int) PassphraseFunc {
	return func(string) ([]byte, error) {
		if calls != nil {
			*calls++
		}
		return []byte(p), nil
	}
}

func newTestFileBackend(path, passphrase string, calls *int) *FileBackend {
	return NewFileBackend(
		config.Vault{FilePath: path},
		fixedPassphrase(passphrase, calls),
		crypto.NewFastKeyWrapService(),
		logger.Nop(),
	)
}

func TestFileBackend_KeysSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vault", "keys.json")

	b1 := newTestFileBackend(path, "hunter2", nil)
	s, err := b1.Open(ctx)
	require.NoError(t, err)
	h, err := s.GenerateAndStoreKey(ctx, "p_token", models.DefaultKeySpec())
	require.NoError(t, err)
	iv, ct, err := h.Encrypt([]byte("abc123"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "abc123")

	b2 := newTestFileBackend(path, "hunter2", nil)
	s, err = b2.Open(ctx)
	require.NoError(t, err)
	defer s.Close()

	again, err := s.GetKey(ctx, "p_token")
	require.NoError(t, err)
	assert.Equal(t, h.Info().ID, again.Info().ID)

	pt, err := again.Decrypt(iv, ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc123"), pt)
}

func TestFileBackend_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "keys.json")

	s, err := newTestFileBackend(path, "right", nil).Open(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = newTestFileBackend(path, "wrong", nil).Open(ctx)
	assert.ErrorIs(t, err, ErrVaultUnavailable)
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestFileBackend_PassphraseAskedOnce(t *testing.T) {
	ctx := context.Background()
	calls := 0
	b := newTestFileBackend(filepath.Join(t.TempDir(), "keys.json"), "pw", &calls)

	for range 3 {
		s, err := b.Open(ctx)
		require.NoError(t, err)
		require.NoError(t, s.Close())
	}
	assert.Equal(t, 1, calls)
}

func TestFileBackend_EmptyOrFailingPassphrase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "keys.json")

	_, err := newTestFileBackend(path, "", nil).Open(ctx)
	assert.ErrorIs(t, err, ErrVaultUnavailable)

	failing := NewFileBackend(config.Vault{FilePath: path},
		func(string) ([]byte, error) { return nil, errors.New("no tty") },
		crypto.NewFastKeyWrapService(), logger.Nop())
	_, err = failing.Open(ctx)
	assert.ErrorIs(t, err, ErrVaultUnavailable)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "vault file must not be created without a passphrase")
}

func TestFileBackend_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := newTestFileBackend(path, "pw", nil).Open(context.Background())
	assert.ErrorIs(t, err, ErrVaultUnavailable)
}

func TestFileBackend_DeleteAndAliases(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "keys.json")
	b := newTestFileBackend(path, "pw", nil)

	s, err := b.Open(ctx)
	require.NoError(t, err)
	_, err = s.GenerateAndStoreKey(ctx, "p_b", models.DefaultKeySpec())
	require.NoError(t, err)
	_, err = s.GenerateAndStoreKey(ctx, "p_a", models.DefaultKeySpec())
	require.NoError(t, err)
	_, err = s.GenerateAndStoreKey(ctx, "p_a", models.DefaultKeySpec())
	assert.ErrorIs(t, err, ErrAliasExists)

	infos, err := s.Aliases(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, models.KeyAlias("p_a"), infos[0].Alias)

	require.NoError(t, s.DeleteKey(ctx, "p_a"))
	assert.ErrorIs(t, s.DeleteKey(ctx, "p_a"), ErrKeyNotFound)
	require.NoError(t, s.Close())

	s, err = newTestFileBackend(path, "pw", nil).Open(ctx)
	require.NoError(t, err)
	defer s.Close()
	ok, err := s.ContainsAlias(ctx, "p_a")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = s.ContainsAlias(ctx, "p_b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileBackend_SessionCloseReleasesLock(t *testing.T) {
	ctx := context.Background()
	b := newTestFileBackend(filepath.Join(t.TempDir(), "keys.json"), "pw", nil)

	s, err := b.Open(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.GetKey(ctx, "p_a")
	assert.ErrorIs(t, err, ErrSessionClosed)

	// a second open would deadlock if Close had not unlocked the backend
	s2, err := b.Open(ctx)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}
