// Package crypto provides the cryptographic primitives for saltcrypt.
//
// Encryption uses AES-256-CBC with:
//   - 32-byte key and 16-byte IV derived from the password
//   - Strict PKCS#7 padding (always 1..16 pad bytes)
//
// Key derivation uses the OpenSSL EVP_BytesToKey construction with:
//   - 8-byte random salt (stored unencrypted in the ciphertext frame)
//   - MD5 digest, single pass, matching `openssl enc` legacy salted mode
//
// MD5 here is a format constraint, not a choice: the on-the-wire layout is
// pinned to what `openssl enc -aes-256-cbc` produced for years, and changing
// the digest would break every existing ciphertext.
//
// Memory safety:
//   - Use ClearBytes() to zero sensitive data after use
package crypto
