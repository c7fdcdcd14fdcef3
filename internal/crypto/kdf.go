package crypto

import (
	"crypto/md5"
	"hash"
)

// BytesToKey derives key material from a password and salt using the OpenSSL
// EVP_BytesToKey construction:
//
//	D_1 = H^count(password || salt)
//	D_i = H^count(D_{i-1} || password || salt)
//
// Successive digests are concatenated until keyLen+ivLen bytes are available;
// the first keyLen bytes form the key and the next ivLen bytes the IV.
// Deterministic: identical inputs always yield identical output.
func BytesToKey(md func() hash.Hash, password, salt []byte, count, keyLen, ivLen int) (key, iv []byte) {
	h := md()
	material := make([]byte, 0, keyLen+ivLen)

	var d []byte
	for len(material) < keyLen+ivLen {
		h.Reset()
		h.Write(d)
		h.Write(password)
		h.Write(salt)
		d = h.Sum(nil)
		for i := 1; i < count; i++ {
			h.Reset()
			h.Write(d)
			d = h.Sum(nil)
		}
		material = append(material, d...)
	}

	return material[:keyLen], material[keyLen : keyLen+ivLen]
}

// DeriveKey derives the AES-256-CBC key and IV for the salted wire format:
// MD5, single digest pass. This matches `openssl enc -aes-256-cbc` in its
// legacy salted mode, which is the interoperability contract of the format.
func DeriveKey(password, salt []byte) (key, iv []byte) {
	return BytesToKey(md5.New, password, salt, 1, KeySize, IVSize)
}
