package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

const (
	SaltSize  = 8             // Salt size in bytes, fixed by the wire format
	KeySize   = 32            // AES-256 key size
	IVSize    = aes.BlockSize // CBC initialization vector size
	BlockSize = aes.BlockSize // AES block size
)

var (
	ErrNotBlockAligned = errors.New("ciphertext length is not a multiple of the block size")
	ErrInvalidPadding  = errors.New("invalid padding")
)

// Encrypt encrypts plaintext using AES-256-CBC with PKCS#7 padding.
// The plaintext may be empty; the output is always at least one block.
func Encrypt(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	padded := pad(plaintext)
	ciphertext := make([]byte, len(padded))

	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// Decrypt decrypts ciphertext using AES-256-CBC and strips PKCS#7 padding.
// Inconsistent padding is reported as an error, never silently truncated;
// with a wrong key it is indistinguishable from corrupted data.
func Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, ErrNotBlockAligned
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(plaintext, ciphertext)

	return unpad(plaintext)
}

// pad appends PKCS#7 padding: 1..16 bytes, each equal to the pad length.
// A plaintext already block-aligned gains a full padding block.
func pad(in []byte) []byte {
	n := BlockSize - len(in)%BlockSize
	out := make([]byte, len(in)+n)
	copy(out, in)
	for i := len(in); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// unpad validates and removes PKCS#7 padding.
func unpad(in []byte) ([]byte, error) {
	if len(in) == 0 {
		return nil, ErrInvalidPadding
	}
	n := int(in[len(in)-1])
	if n == 0 || n > BlockSize || n > len(in) {
		return nil, ErrInvalidPadding
	}
	for _, b := range in[len(in)-n:] {
		if b != byte(n) {
			return nil, ErrInvalidPadding
		}
	}
	return in[:len(in)-n], nil
}

// ClearBytes securely clears a byte slice
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
