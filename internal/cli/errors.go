package cli

import "errors"

var (
	// ErrConfirmationRequired is returned by clear without --yes.
	ErrConfirmationRequired = errors.New("refusing to clear without --yes")

	// ErrNoTerminal is returned when a passphrase is needed but stdin is not
	// a terminal and VAULT_PASSPHRASE is unset.
	ErrNoTerminal = errors.New("stdin is not a terminal, set VAULT_PASSPHRASE")
)
