package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/illarion/saltcrypt/crypter"
	"github.com/illarion/saltcrypt/internal/crypto"
	"golang.org/x/term"
)

// PasswordEnvVar names the environment variable consulted before prompting.
const PasswordEnvVar = "SALTCRYPT_PASSWORD"

// GetPassword retrieves the password from the environment or prompts the user.
// The caller is responsible for calling crypto.ClearBytes on the returned password.
func GetPassword(prompt string) ([]byte, error) {
	if password := os.Getenv(PasswordEnvVar); password != "" {
		return []byte(password), nil
	}

	password, err := readPassword(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	return password, nil
}

// GetPasswordConfirm is like GetPassword but, when prompting, asks twice and
// ensures both entries match. Used before encrypting, where a typo would
// produce ciphertext nobody can open.
func GetPasswordConfirm() ([]byte, error) {
	if password := os.Getenv(PasswordEnvVar); password != "" {
		return []byte(password), nil
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		crypto.ClearBytes(password)
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	defer crypto.ClearBytes(confirm)

	if !bytes.Equal(password, confirm) {
		crypto.ClearBytes(password)
		return nil, errors.New("passwords do not match")
	}

	return password, nil
}

// readPassword reads a password from the terminal without echoing
func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // New line after password

	if err != nil {
		return nil, err
	}

	return password, nil
}

// readInput returns the first positional argument, or all of stdin when no
// argument was given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// debugLogger returns the opt-in derivation-parameter logger, or nil.
func debugLogger(verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// HandleError reports common errors consistently and exits non-zero.
func HandleError(err error) {
	var decErr *crypter.DecryptionError
	switch {
	case errors.Is(err, crypter.ErrMalformedInput):
		fmt.Fprintf(os.Stderr, "Error: input is not a valid ciphertext: %s\n", err)
	case errors.As(err, &decErr):
		fmt.Fprintf(os.Stderr, "Error: decryption failed (wrong password or corrupted input)\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}

// trimTrailingNewline strips the newline most shells append to piped input.
func trimTrailingNewline(s string) string {
	return strings.TrimRight(s, "\r\n")
}
