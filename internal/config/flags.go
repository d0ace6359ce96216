package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the values bound to command-line flags by [BindFlags]. Unset
// flags keep their zero value and therefore do not override other sources.
type Flags struct {
	jsonPath        string
	aliasPrefix     string
	purgeKeys       bool
	driver          string
	dsn             string
	namespace       string
	vaultBackend    string
	serviceName     string
	vaultFile       string
	keyringBackends []string
	logLevel        string
	logFile         string
}

// BindFlags registers the configuration flags on fs.
//
// Flags:
//
//	-c/--config         json file path with configs
//	--alias-prefix      vault key alias prefix
//	--purge-keys        delete vault keys together with their records
//	--storage-driver    sqlite | postgres | memory
//	-d/--dsn            database DSN
//	--namespace         backing store namespace
//	--vault             keyring | file | memory
//	--vault-service     keyring service name
//	--vault-file        file vault path
//	--keyring-backends  allowed OS keyring backends
//	--log-level         zerolog level
//	--log-file          log file path
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.jsonPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.aliasPrefix, "alias-prefix", "", "Vault key alias prefix")
	fs.BoolVar(&f.purgeKeys, "purge-keys", false, "Delete vault keys together with their records")
	fs.StringVar(&f.driver, "storage-driver", "", "Backing store driver: sqlite, postgres or memory")
	fs.StringVarP(&f.dsn, "dsn", "d", "", "Database DSN")
	fs.StringVar(&f.namespace, "namespace", "", "Backing store namespace")
	fs.StringVar(&f.vaultBackend, "vault", "", "Vault backend: keyring, file or memory")
	fs.StringVar(&f.serviceName, "vault-service", "", "Keyring service name")
	fs.StringVar(&f.vaultFile, "vault-file", "", "File vault path")
	fs.StringSliceVar(&f.keyringBackends, "keyring-backends", nil, "Allowed OS keyring backends")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")

	return f
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AliasPrefix: f.aliasPrefix,
			PurgeKeys:   f.purgeKeys,
		},
		Storage: Storage{
			Driver:    f.driver,
			Namespace: f.namespace,
			DB:        DB{DSN: f.dsn},
		},
		Vault: Vault{
			Backend:         f.vaultBackend,
			ServiceName:     f.serviceName,
			FilePath:        f.vaultFile,
			KeyringBackends: f.keyringBackends,
		},
		Log: Log{
			Level: f.logLevel,
			File:  f.logFile,
		},
		JSONFilePath: f.jsonPath,
	}
}

// UseEphemeral points the flags at the in-memory store and vault.
func (f *Flags) UseEphemeral() {
	f.driver = DriverMemory
	f.vaultBackend = VaultBackendMemory
}
