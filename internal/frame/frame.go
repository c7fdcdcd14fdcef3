// Package frame implements the OpenSSL salted ciphertext layout:
//
//	"Salted__" (8 bytes ASCII) || salt (8 bytes) || ciphertext
//
// Lengths are fixed, so the parts are concatenated with no delimiters and
// recovered by offset. Unlike the historical tools, Unframe verifies the
// marker bytes and fails closed on a mismatch.
package frame

import (
	"errors"

	"github.com/illarion/saltcrypt/internal/crypto"
)

const (
	// Marker is the ASCII prefix openssl writes before the salt.
	Marker = "Salted__"

	MarkerSize = len(Marker)
	HeaderSize = MarkerSize + crypto.SaltSize
)

var (
	ErrTooShort  = errors.New("input too short to contain marker and salt")
	ErrBadMarker = errors.New("missing Salted__ marker")
)

// Frame serializes the salt and ciphertext behind the marker.
func Frame(salt, ciphertext []byte) []byte {
	out := make([]byte, 0, HeaderSize+len(ciphertext))
	out = append(out, Marker...)
	out = append(out, salt...)
	out = append(out, ciphertext...)
	return out
}

// Unframe recovers the salt and ciphertext from a framed blob.
func Unframe(data []byte) (salt, ciphertext []byte, err error) {
	if len(data) < HeaderSize {
		return nil, nil, ErrTooShort
	}
	if string(data[:MarkerSize]) != Marker {
		return nil, nil, ErrBadMarker
	}
	return data[MarkerSize:HeaderSize], data[HeaderSize:], nil
}
