package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminal(t *testing.T, tty bool, password []byte, err error) {
	t.Helper()
	origRead, origIsTerminal := readPassword, isTerminal
	t.Cleanup(func() {
		readPassword, isTerminal = origRead, origIsTerminal
	})

	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return password, err }
}

func TestTerminalPrompt(t *testing.T) {
	stubTerminal(t, true, []byte("hunter2"), nil)

	var w bytes.Buffer
	got, err := terminalPrompt(&w)("Vault passphrase")

	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), got)
	assert.Equal(t, "Vault passphrase: \n", w.String())
}

func TestTerminalPrompt_NotATerminal(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	_, err := terminalPrompt(&bytes.Buffer{})("Vault passphrase")
	assert.ErrorIs(t, err, ErrNoTerminal)
}

func TestTerminalPrompt_ReadError(t *testing.T) {
	boom := errors.New("boom")
	stubTerminal(t, true, nil, boom)

	_, err := terminalPrompt(&bytes.Buffer{})("Vault passphrase")
	assert.ErrorIs(t, err, boom)
}
