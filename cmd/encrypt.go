package cmd

import (
	"fmt"
	"os"

	"github.com/illarion/saltcrypt/crypter"
	"github.com/illarion/saltcrypt/internal/crypto"
)

// Encrypt encrypts the argument (or stdin) and prints the base64 ciphertext.
func Encrypt(args []string, verbose bool) {
	plaintext, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	password, err := GetPasswordConfirm()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer crypto.ClearBytes(password)

	e := crypter.New()
	if l := debugLogger(verbose); l != nil {
		e.SetDebugLogger(l)
	}

	encoded, err := e.Encrypt(plaintext, password)
	if err != nil {
		HandleError(err)
	}

	fmt.Println(encoded)
}
