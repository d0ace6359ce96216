// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyAlias names a single key inside the secure vault. One alias belongs to
// exactly one logical entry and is derived from the entry name and its
// namespace, so the same entry always resolves to the same key.
type KeyAlias string

const (
	// aliasSeparator joins the fixed prefix and the logical entry name.
	aliasSeparator = "_"
	// NamespaceSeparator ends the namespace part of a scoped alias. A namespace
	// must not contain it.
	NamespaceSeparator = "."
)

// NewKeyAlias derives the vault alias for the logical entry name.
func NewKeyAlias(prefix, name string) KeyAlias {
	return KeyAlias(prefix + aliasSeparator + name)
}

// NewScopedKeyAlias derives the alias for name inside namespace, in the form
// <prefix>_<namespace>.<name>. Stores sharing a vault under different
// namespaces never resolve to the same key. An empty namespace falls back to
// [NewKeyAlias].
func NewScopedKeyAlias(prefix, namespace, name string) KeyAlias {
	if namespace == "" {
		return NewKeyAlias(prefix, name)
	}
	return NewKeyAlias(prefix, namespace+NamespaceSeparator+name)
}

// String implements fmt.Stringer.
func (a KeyAlias) String() string {
	return string(a)
}
