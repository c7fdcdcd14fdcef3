// Package crypter encrypts and decrypts strings in a manner compatible with
// the legacy salted mode of the openssl command line tool.
//
// A string encrypted with this package can be decrypted with:
//
//	echo '<ciphertext>' | openssl enc -d -aes-256-cbc -md md5 -a -pass pass:<password>
//
// and ciphertext produced by the matching openssl encrypt command decrypts
// here. The wire format is
//
//	base64("Salted__" || salt[8] || AES-256-CBC-PKCS7(plaintext, key, iv))
//
// with key and IV derived from the password and salt via the MD5
// EVP_BytesToKey construction. A fresh random salt is generated for every
// call, so encrypting the same plaintext twice yields different output.
//
// This is a legacy interoperability format, not a general-purpose
// cryptographic scheme: the ciphertext is unauthenticated, so decryption
// with a wrong password usually fails with a padding error but can also
// produce garbage. Callers needing integrity should use an AEAD instead.
package crypter
