// Package envelope stores named secrets in a plain key-value store, each one
// sealed with its own AES-256-GCM key held by a secure vault.
//
// A record is written under its logical name as base64(IV || ciphertext || tag).
// The key is looked up under the alias "<prefix>_<name>" and created on first
// use. Reads never return partial plaintext: any failure yields absence, and
// [Store.Lookup] exposes the reason for logging.
package envelope
