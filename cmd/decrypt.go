package cmd

import (
	"fmt"
	"os"

	"github.com/illarion/saltcrypt/crypter"
	"github.com/illarion/saltcrypt/internal/crypto"
)

// Decrypt decrypts the base64 argument (or stdin) and prints the plaintext.
func Decrypt(args []string, verbose bool) {
	encoded, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	encoded = trimTrailingNewline(encoded)

	password, err := GetPassword("Enter password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer crypto.ClearBytes(password)

	e := crypter.New()
	if l := debugLogger(verbose); l != nil {
		e.SetDebugLogger(l)
	}

	plaintext, err := e.Decrypt(encoded, password)
	if err != nil {
		HandleError(err)
	}

	fmt.Println(plaintext)
}
