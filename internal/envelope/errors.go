package envelope

import "errors"

var (
	// ErrEmptyName is returned by [Store.Store] for an empty entry name.
	ErrEmptyName = errors.New("entry name is empty")

	// ErrEncryptionFailed wraps a failure to seal plaintext with an entry key.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed marks a record that could not be opened: the key is
	// missing, it is the wrong key, or the tag does not authenticate.
	ErrDecryptionFailed = errors.New("decryption failed")
)
