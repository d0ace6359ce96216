package envelope_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sealed-prefs/internal/config"
	"github.com/MKhiriev/go-sealed-prefs/internal/crypto"
	"github.com/MKhiriev/go-sealed-prefs/internal/envelope"
	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
	"github.com/MKhiriev/go-sealed-prefs/internal/store"
	"github.com/MKhiriev/go-sealed-prefs/internal/vault"
	"github.com/MKhiriev/go-sealed-prefs/models"
)

type fixture struct {
	envelope *envelope.Store
	prefs    store.Preferences
	vault    *vault.KeyVault
}

func newFixture(t *testing.T, opts ...envelope.Option) fixture {
	t.Helper()
	prefs := store.NewMemoryPreferences()
	kv := vault.New(vault.NewMemoryBackend(), logger.Nop())

	return fixture{
		envelope: envelope.New(prefs, kv, logger.Nop(), opts...),
		prefs:    prefs,
		vault:    kv,
	}
}

func (f fixture) raw(t *testing.T, name string) []byte {
	t.Helper()
	encoded, ok, err := f.prefs.Get(context.Background(), name)
	require.NoError(t, err)
	require.True(t, ok, "no record for %q", name)

	blob, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	return blob
}

func (f fixture) putRaw(t *testing.T, name string, blob []byte) {
	t.Helper()
	require.NoError(t, f.prefs.Put(context.Background(), name, base64.StdEncoding.EncodeToString(blob)))
}

func TestStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"one byte", []byte{0x00}},
		{"text", []byte("abc123")},
		{"binary", []byte{0xff, 0x00, 0x10, 0x80, 0x7f}},
		{"large", make([]byte, 64*1024)},
	}

	ctx := context.Background()
	f := newFixture(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, f.envelope.Store(ctx, tt.name, tt.data))

			got, ok := f.envelope.Retrieve(ctx, tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestStore_RecordFormat(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.envelope.Store(ctx, "token", []byte("abc123")))

	blob := f.raw(t, "token")
	assert.Len(t, blob, models.GCMNonceSize+len("abc123")+models.GCMTagSize)
}

func TestStore_ExampleScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.envelope.Store(ctx, "token", []byte("abc123")))

	keys, err := f.prefs.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"token"}, keys)

	got, ok := f.envelope.Retrieve(ctx, "token")
	require.True(t, ok)
	assert.Equal(t, []byte("abc123"), got)

	require.NoError(t, f.envelope.Remove(ctx, "token"))

	got, ok = f.envelope.Retrieve(ctx, "token")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_PerEntryIsolation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	plaintext := []byte("same secret")

	require.NoError(t, f.envelope.Store(ctx, "a", plaintext))
	require.NoError(t, f.envelope.Store(ctx, "b", plaintext))

	recA, recB := f.raw(t, "a"), f.raw(t, "b")
	assert.NotEqual(t, recA, recB)
	assert.NotEqual(t, recA[:models.GCMNonceSize], recB[:models.GCMNonceSize])

	infos, err := f.vault.Aliases(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.NotEqual(t, infos[0].ID, infos[1].ID)

	// a's record placed under b is opened with b's key and must not decrypt
	f.putRaw(t, "b", recA)
	got, ok := f.envelope.Retrieve(ctx, "b")
	assert.False(t, ok)
	assert.Nil(t, got)

	res := f.envelope.Lookup(ctx, "b")
	assert.Equal(t, models.StatusCorrupted, res.Status)
	assert.ErrorIs(t, res.Err, envelope.ErrDecryptionFailed)

	got, ok = f.envelope.Retrieve(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, plaintext, got)
}

func TestStore_TamperDetection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.envelope.Store(ctx, "token", []byte("abc123")))
	original := f.raw(t, "token")

	// every bit of the record, IV included
	for i := range len(original) * 8 {
		tampered := append([]byte(nil), original...)
		tampered[i/8] ^= 1 << (i % 8)
		f.putRaw(t, "token", tampered)

		got, ok := f.envelope.Retrieve(ctx, "token")
		if ok || got != nil {
			t.Fatalf("bit %d flipped: expected absence, got %q", i, got)
		}
	}

	f.putRaw(t, "token", original)
	got, ok := f.envelope.Retrieve(ctx, "token")
	require.True(t, ok)
	assert.Equal(t, []byte("abc123"), got)
}

func TestStore_IVUniqueness(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.envelope.Store(ctx, "token", []byte("abc123")))
	first := f.raw(t, "token")
	require.NoError(t, f.envelope.Store(ctx, "token", []byte("abc123")))
	second := f.raw(t, "token")

	assert.NotEqual(t, first[:models.GCMNonceSize], second[:models.GCMNonceSize])
}

func TestStore_RemoveThenStoreReusesKey(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.envelope.Store(ctx, "token", []byte("v1")))
	before, err := f.vault.Aliases(ctx)
	require.NoError(t, err)

	require.NoError(t, f.envelope.Remove(ctx, "token"))
	_, ok := f.envelope.Retrieve(ctx, "token")
	assert.False(t, ok)

	require.NoError(t, f.envelope.Store(ctx, "token", []byte("v2")))
	got, ok := f.envelope.Retrieve(ctx, "token")
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), got)

	after, err := f.vault.Aliases(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_RemoveAbsent(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.envelope.Remove(context.Background(), "nothing"))
}

func TestStore_ClearAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	names := []string{"a", "b", "c"}

	for _, name := range names {
		require.NoError(t, f.envelope.Store(ctx, name, []byte(name)))
	}
	require.NoError(t, f.envelope.ClearAll(ctx))

	for _, name := range names {
		_, ok := f.envelope.Retrieve(ctx, name)
		assert.False(t, ok, name)
	}

	// keys stay provisioned by default
	infos, err := f.vault.Aliases(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, len(names))
}

func TestStore_MalformedInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := map[string]string{
		"empty value":     "",
		"not base64":      "%%% not base64 %%%",
		"shorter than iv": base64.StdEncoding.EncodeToString(make([]byte, 5)),
		"exactly iv":      base64.StdEncoding.EncodeToString(make([]byte, models.GCMNonceSize)),
	}

	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, f.prefs.Put(ctx, "token", value))

			got, ok := f.envelope.Retrieve(ctx, "token")
			assert.False(t, ok)
			assert.Nil(t, got)

			res := f.envelope.Lookup(ctx, "token")
			assert.Equal(t, models.StatusCorrupted, res.Status)
			assert.ErrorIs(t, res.Err, models.ErrMalformedRecord)
		})
	}
}

func TestStore_RecordWithoutKey(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// 12-byte IV plus a 16-byte "tag", but no key was ever created
	f.putRaw(t, "token", make([]byte, models.GCMNonceSize+models.GCMTagSize))

	res := f.envelope.Lookup(ctx, "token")
	assert.Equal(t, models.StatusCorrupted, res.Status)
	assert.ErrorIs(t, res.Err, envelope.ErrDecryptionFailed)
	assert.ErrorIs(t, res.Err, vault.ErrKeyNotFound)

	// a read never creates a key
	infos, err := f.vault.Aliases(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestStore_LookupStatuses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.Equal(t, models.StatusNotFound, f.envelope.Lookup(ctx, "missing").Status)
	assert.Equal(t, models.StatusNotFound, f.envelope.Lookup(ctx, "").Status)

	require.NoError(t, f.envelope.Store(ctx, "token", []byte("x")))
	res := f.envelope.Lookup(ctx, "token")
	assert.True(t, res.Found())
	assert.Equal(t, []byte("x"), res.Data)
	assert.NoError(t, res.Err)
}

func TestStore_EmptyName(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.envelope.Store(context.Background(), "", []byte("x")), envelope.ErrEmptyName)
}

func TestStore_NamesAndContains(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.envelope.Store(ctx, "b", []byte("2")))
	require.NoError(t, f.envelope.Store(ctx, "a", []byte("1")))

	names, err := f.envelope.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	ok, err := f.envelope.Contains(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.envelope.Contains(ctx, "z")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_KeyPurge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, envelope.WithKeyPurge(true))

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, f.envelope.Store(ctx, name, []byte(name)))
	}

	require.NoError(t, f.envelope.Remove(ctx, "a"))
	infos, err := f.vault.Aliases(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	// removing again finds no key and is still fine
	require.NoError(t, f.envelope.Remove(ctx, "a"))

	require.NoError(t, f.envelope.ClearAll(ctx))
	infos, err = f.vault.Aliases(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestStore_AliasPrefix(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, envelope.WithAliasPrefix("custom"))

	assert.Equal(t, models.KeyAlias("custom_token"), f.envelope.Alias("token"))
	require.NoError(t, f.envelope.Store(ctx, "token", []byte("x")))

	infos, err := f.vault.Aliases(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, models.KeyAlias("custom_token"), infos[0].Alias)

	// a store with another prefix cannot open the record
	other := envelope.New(f.prefs, f.vault, logger.Nop())
	_, ok := other.Retrieve(ctx, "token")
	assert.False(t, ok)
}

func TestStore_NamespacesShareVault(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "prefs.db")
	kv := vault.New(vault.NewMemoryBackend(), logger.Nop())

	open := func(namespace string) *envelope.Store {
		s, err := store.NewStorage(ctx, config.Storage{
			Driver:    config.DriverSQLite,
			Namespace: namespace,
			DB:        config.DB{DSN: dsn},
		}, logger.Nop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return envelope.New(s.Preferences, kv, logger.Nop(),
			envelope.WithNamespace(namespace),
			envelope.WithKeyPurge(true),
		)
	}
	a, b := open("ns_a"), open("ns_b")

	assert.Equal(t, models.KeyAlias("sealed_prefs_ns_a.token"), a.Alias("token"))
	assert.NotEqual(t, a.Alias("token"), b.Alias("token"))

	require.NoError(t, a.Store(ctx, "token", []byte("from a")))
	require.NoError(t, b.Store(ctx, "token", []byte("from b")))
	require.NoError(t, a.Remove(ctx, "token"))

	res := b.Lookup(ctx, "token")
	require.Equal(t, models.StatusFound, res.Status, "err: %v", res.Err)
	assert.Equal(t, []byte("from b"), res.Data)

	require.NoError(t, a.Store(ctx, "token", []byte("again")))
	require.NoError(t, a.ClearAll(ctx))
	got, ok := b.Retrieve(ctx, "token")
	require.True(t, ok)
	assert.Equal(t, []byte("from b"), got)
}

func TestStore_DefaultAliasPrefix(t *testing.T) {
	f := newFixture(t, envelope.WithAliasPrefix(""))
	assert.Equal(t, models.KeyAlias("sealed_prefs_token"), f.envelope.Alias("token"))
}

func TestStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("entry-%d", i)
			assert.NoError(t, f.envelope.Store(ctx, name, []byte(name)))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, f.envelope.Store(ctx, "shared", fmt.Appendf(nil, "writer-%d", i)))
		}()
	}
	wg.Wait()

	for i := range 16 {
		name := fmt.Sprintf("entry-%d", i)
		got, ok := f.envelope.Retrieve(ctx, name)
		require.True(t, ok)
		assert.Equal(t, []byte(name), got)
	}

	// last writer wins, and the winner is always readable
	got, ok := f.envelope.Retrieve(ctx, "shared")
	require.True(t, ok)
	assert.Regexp(t, `^writer-\d+$`, string(got))

	infos, err := f.vault.Aliases(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 17)
}

func TestStore_FileVaultSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.Vault{FilePath: filepath.Join(t.TempDir(), "vault.json")}
	passphrase := func(string) ([]byte, error) { return []byte("correct horse"), nil }
	prefs := store.NewMemoryPreferences()

	first := envelope.New(prefs,
		vault.New(vault.NewFileBackend(cfg, passphrase, crypto.NewFastKeyWrapService(), logger.Nop()), logger.Nop()),
		logger.Nop())
	require.NoError(t, first.Store(ctx, "token", []byte("abc123")))

	second := envelope.New(prefs,
		vault.New(vault.NewFileBackend(cfg, passphrase, crypto.NewFastKeyWrapService(), logger.Nop()), logger.Nop()),
		logger.Nop())
	got, ok := second.Retrieve(ctx, "token")
	require.True(t, ok)
	assert.Equal(t, []byte("abc123"), got)

	wrong := func(string) ([]byte, error) { return []byte("battery staple"), nil }
	locked := envelope.New(prefs,
		vault.New(vault.NewFileBackend(cfg, wrong, crypto.NewFastKeyWrapService(), logger.Nop()), logger.Nop()),
		logger.Nop())

	res := locked.Lookup(ctx, "token")
	assert.Equal(t, models.StatusUnavailable, res.Status)
	assert.ErrorIs(t, res.Err, vault.ErrVaultUnavailable)

	err := locked.Store(ctx, "token", []byte("x"))
	assert.True(t, errors.Is(err, vault.ErrVaultUnavailable))
}
