package crypter

import (
	"errors"
	"fmt"
)

// ErrMalformedInput reports input that is not a valid ciphertext envelope:
// not base64, too short to hold the marker and salt, or missing the
// Salted__ marker. Matched with errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// EncryptionError wraps any failure during encryption. The failed plaintext
// is deliberately not retained: error values travel into logs.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("could not encrypt string: %s", e.Err)
}

func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// DecryptionError wraps any failure during decryption. The scheme carries no
// integrity check, so a wrong password and corrupted data surface the same
// way. Input holds the offending base64 text for diagnostics.
type DecryptionError struct {
	Input string
	Err   error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("could not decrypt string %q: %s", e.Input, e.Err)
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}
