// Package crypto holds the symmetric primitives of the sealed preferences
// store: AES-256-GCM sealing with a 12-byte random nonce and a 128-bit tag,
// and passphrase-based key wrapping for vault backends that keep key material
// on disk.
//
// Nothing in this package persists data or knows about entry names.
package crypto
