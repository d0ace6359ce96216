package models

import "time"

// VaultKeyInfo is the non-secret description of a key held by the vault.
type VaultKeyInfo struct {
	Alias     KeyAlias  `json:"alias"`
	ID        string    `json:"id"`
	Spec      KeySpec   `json:"spec"`
	CreatedAt time.Time `json:"created_at"`
}
