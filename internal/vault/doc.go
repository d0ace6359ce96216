// Package vault adapts a secure key vault to the envelope store.
//
// A vault holds named symmetric keys and lets the process use them without
// handing out raw key bytes. Three backends are provided:
//
//   - [KeyringBackend] stores keys in the operating system's credential
//     store (Keychain, Secret Service, KWallet, WinCred, pass, keyctl) via
//     github.com/99designs/keyring;
//   - [FileBackend] keeps keys in a local JSON file, each one wrapped with a
//     key derived from a passphrase by Argon2id;
//   - [MemoryBackend] keeps keys in process memory only.
//
// Inside the process a key only ever exists as a [KeyHandle], whose material
// lives in a memguard enclave and is unsealed for the duration of a single
// encrypt or decrypt call.
//
// [KeyVault] is the adapter the envelope store talks to. Every call opens a
// backend [Session], uses it and closes it before returning.
package vault
