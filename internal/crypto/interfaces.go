package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_wrap_service_mock.go -package=mock

// KeyWrapService protects vault key material at rest for vault backends that
// have no hardware or OS facility of their own. It never sees envelope
// payloads; those are sealed by [Seal] with a vault-held key.
//
// Scheme:
//
//	Salt     = NewSalt()                       (once per vault)
//	KEK      = DeriveKEK(passphrase, salt)     (every session open)
//	AuthHash = AuthHash(KEK, domain)           (stored, compared on open)
//	Wrapped  = WrapKey(key, KEK)               (per vault key)
type KeyWrapService interface {
	// NewSalt returns 16 random bytes. The salt is not secret.
	NewSalt() ([]byte, error)

	// DeriveKEK stretches passphrase with Argon2id into a 256-bit key.
	DeriveKEK(passphrase []byte, salt []byte) []byte

	// AuthHash returns SHA-256(KEK || domain). It lets a vault detect a wrong
	// passphrase without attempting to unwrap any key.
	AuthHash(KEK []byte, domain string) []byte

	// WrapKey seals key with KEK. The result is nonce || ciphertext.
	WrapKey(key, KEK []byte) ([]byte, error)

	// UnwrapKey reverses WrapKey and fails if KEK is wrong or the blob was
	// modified.
	UnwrapKey(wrapped, KEK []byte) ([]byte, error)
}
