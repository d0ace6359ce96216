package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeyAlias_Deterministic(t *testing.T) {
	assert.Equal(t, KeyAlias("sealed_prefs_token"), NewKeyAlias("sealed_prefs", "token"))
	assert.Equal(t, NewKeyAlias("p", "a"), NewKeyAlias("p", "a"))
	assert.NotEqual(t, NewKeyAlias("p", "a"), NewKeyAlias("p", "b"))
}

func TestNewScopedKeyAlias(t *testing.T) {
	assert.Equal(t, KeyAlias("sealed_prefs_ns_a.token"), NewScopedKeyAlias("sealed_prefs", "ns_a", "token"))
	assert.Equal(t, NewKeyAlias("sealed_prefs", "token"), NewScopedKeyAlias("sealed_prefs", "", "token"))
	assert.NotEqual(t, NewScopedKeyAlias("p", "a", "x_y"), NewScopedKeyAlias("p", "a_x", "y"))
	assert.NotEqual(t, NewScopedKeyAlias("p", "a", "t"), NewScopedKeyAlias("p", "b", "t"))
}

func TestDefaultKeySpec_Validates(t *testing.T) {
	spec := DefaultKeySpec()

	assert.NoError(t, spec.Validate())
	assert.Equal(t, 32, spec.KeySizeBytes())
	assert.True(t, spec.Purposes.Has(PurposeEncrypt))
	assert.True(t, spec.Purposes.Has(PurposeDecrypt))
}

func TestKeySpec_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*KeySpec)
	}{
		{name: "algorithm", mutate: func(s *KeySpec) { s.Algorithm = "DES" }},
		{name: "key size", mutate: func(s *KeySpec) { s.KeySize = 128 }},
		{name: "block mode", mutate: func(s *KeySpec) { s.BlockMode = "CBC" }},
		{name: "padding", mutate: func(s *KeySpec) { s.Padding = "PKCS7" }},
		{name: "no purposes", mutate: func(s *KeySpec) { s.Purposes = 0 }},
		{name: "unknown purpose", mutate: func(s *KeySpec) { s.Purposes |= 1 << 5 }},
		{name: "caller supplied IV", mutate: func(s *KeySpec) { s.RandomizedEncryptionRequired = false }},
		{name: "user auth", mutate: func(s *KeySpec) { s.UserAuthenticationRequired = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultKeySpec()
			tt.mutate(&spec)
			assert.ErrorIs(t, spec.Validate(), ErrUnsupportedKeySpec)
		})
	}
}

func TestPurpose_HasAndString(t *testing.T) {
	p := PurposeEncrypt
	assert.True(t, p.Has(PurposeEncrypt))
	assert.False(t, p.Has(PurposeDecrypt))
	assert.False(t, p.Has(0))
	assert.Equal(t, "encrypt", p.String())
	assert.Equal(t, "encrypt|decrypt", (PurposeEncrypt | PurposeDecrypt).String())
	assert.Equal(t, "none", Purpose(0).String())
}
