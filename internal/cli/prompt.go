package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/MKhiriev/go-sealed-prefs/internal/vault"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// terminalPrompt asks for the vault passphrase on stdin without echo,
// printing the prompt to w.
func terminalPrompt(w io.Writer) vault.PassphraseFunc {
	return func(prompt string) ([]byte, error) {
		fd := int(os.Stdin.Fd())
		if !isTerminal(fd) {
			return nil, ErrNoTerminal
		}

		fmt.Fprintf(w, "%s: ", prompt)
		passphrase, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return nil, fmt.Errorf("read passphrase: %w", err)
		}
		return passphrase, nil
	}
}
