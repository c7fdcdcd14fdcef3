package crypter

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/illarion/saltcrypt/internal/crypto"
	"github.com/illarion/saltcrypt/internal/frame"
)

// Encrypter performs password-based encryption and decryption in the
// openssl-compatible salted format.
//
// The zero value is not usable; construct with New or NewWithRand. An
// Encrypter is safe for concurrent use as long as its random source is;
// crypto/rand.Reader, the default, is.
type Encrypter struct {
	rand io.Reader
	log  *slog.Logger
}

// New creates an Encrypter drawing salts from crypto/rand.
func New() *Encrypter {
	return NewWithRand(rand.Reader)
}

// NewWithRand creates an Encrypter drawing salts from the given source.
// Intended for tests that need a pinned salt; production callers should
// use New.
func NewWithRand(r io.Reader) *Encrypter {
	return &Encrypter{rand: r}
}

// SetDebugLogger enables debug logging of non-sensitive key derivation
// parameters (salt and IV, never password or plaintext). Logging is off
// until enabled. Set before first use; not synchronized.
func (e *Encrypter) SetDebugLogger(l *slog.Logger) {
	e.log = l
}

// Encrypt encrypts plaintext with a key derived from password and a fresh
// random salt, returning the base64 ciphertext envelope. Failures are
// reported as *EncryptionError.
func (e *Encrypter) Encrypt(plaintext string, password []byte) (string, error) {
	// each encryption call gets its own salt
	salt := make([]byte, crypto.SaltSize)
	if _, err := io.ReadFull(e.rand, salt); err != nil {
		return "", &EncryptionError{Err: fmt.Errorf("failed to generate salt: %w", err)}
	}

	ciphertext, err := e.run(true, []byte(plaintext), password, salt)
	if err != nil {
		return "", &EncryptionError{Err: err}
	}

	return base64.StdEncoding.EncodeToString(frame.Frame(salt, ciphertext)), nil
}

// Decrypt reverses Encrypt given the same password. It fails with an error
// matching ErrMalformedInput when the input is not a valid envelope, and
// with *DecryptionError when decryption itself fails — most commonly a
// wrong password, indistinguishable here from corrupted data.
func (e *Encrypter) Decrypt(encoded string, password []byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	salt, ciphertext, err := frame.Unframe(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	plaintext, err := e.run(false, ciphertext, password, salt)
	if err != nil {
		return "", &DecryptionError{Input: encoded, Err: err}
	}

	// Historical encoders sometimes space-padded instead of relying on
	// PKCS#7 alone; padding is already strictly validated by this point.
	return strings.TrimRightFunc(string(plaintext), unicode.IsSpace), nil
}

// run derives the key and IV for (password, salt) and applies the cipher in
// the requested direction.
func (e *Encrypter) run(encrypt bool, data, password, salt []byte) ([]byte, error) {
	key, iv := crypto.DeriveKey(password, salt)
	defer crypto.ClearBytes(key)
	defer crypto.ClearBytes(iv)

	if e.log != nil {
		e.log.Debug("derived cipher parameters",
			"salt", hex.EncodeToString(salt),
			"iv", hex.EncodeToString(iv))
	}

	if encrypt {
		return crypto.Encrypt(key, iv, data)
	}
	return crypto.Decrypt(key, iv, data)
}

var defaultEncrypter = New()

// Encrypt encrypts plaintext with the default Encrypter.
func Encrypt(plaintext string, password []byte) (string, error) {
	return defaultEncrypter.Encrypt(plaintext, password)
}

// Decrypt decrypts ciphertext with the default Encrypter.
func Decrypt(encoded string, password []byte) (string, error) {
	return defaultEncrypter.Decrypt(encoded, password)
}
