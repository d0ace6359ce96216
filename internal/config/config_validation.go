// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-sealed-prefs/models"
)

// validate checks that the final merged [StructuredConfig] can be used to
// build the store, the vault and the logger.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AliasPrefix == "" {
		return fmt.Errorf("%w: alias prefix is empty", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.Driver {
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if cfg.Storage.Namespace == "" {
		return fmt.Errorf("%w: namespace is empty", ErrInvalidStorageConfigs)
	}
	if strings.Contains(cfg.Storage.Namespace, models.NamespaceSeparator) {
		return fmt.Errorf("%w: namespace must not contain %q", ErrInvalidStorageConfigs, models.NamespaceSeparator)
	}

	switch cfg.Vault.Backend {
	case VaultBackendKeyring:
		if cfg.Vault.ServiceName == "" {
			return fmt.Errorf("%w: keyring needs a service name", ErrInvalidVaultConfigs)
		}
	case VaultBackendFile:
		if cfg.Vault.FilePath == "" {
			return fmt.Errorf("%w: file vault needs a path", ErrInvalidVaultConfigs)
		}
	case VaultBackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidVaultConfigs, cfg.Vault.Backend)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}
