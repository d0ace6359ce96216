// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Each section of
// [StructuredConfig] carries its own envPrefix, so variables read as
// APP_ALIAS_PREFIX, STORAGE_DRIVER, STORAGE_DB_DSN, VAULT_BACKEND,
// VAULT_PASSPHRASE, LOG_LEVEL and so on; CONFIG names the JSON file.
// List fields such as VAULT_KEYRING_BACKENDS are split on commas.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
