package envelope

// DefaultAliasPrefix is prepended to every entry name to form its key alias.
const DefaultAliasPrefix = "sealed_prefs"

// Option configures a [Store].
type Option func(*Store)

// WithKeyPurge makes Remove and ClearAll also delete the vault keys of the
// entries they remove. Without it keys stay provisioned and are reused when
// the same name is stored again.
func WithKeyPurge(purge bool) Option {
	return func(s *Store) {
		s.purgeKeys = purge
	}
}

// WithAliasPrefix replaces [DefaultAliasPrefix]. An empty prefix is ignored.
func WithAliasPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.aliasPrefix = prefix
		}
	}
}

// WithNamespace scopes every alias to namespace, so that stores over
// different namespaces of one backing store can share a vault. It should be
// the namespace of the Preferences the Store writes to and must not contain
// [models.NamespaceSeparator] (".").
func WithNamespace(namespace string) Option {
	return func(s *Store) {
		s.namespace = namespace
	}
}
