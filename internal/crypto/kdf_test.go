package crypto

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference values generated with OpenSSL 3.0:
//
//	openssl enc -aes-256-cbc -md md5 -S 0001020304050607 -pass pass:aTestPassword -p
func TestDeriveKeyVector(t *testing.T) {
	salt, err := hex.DecodeString("0001020304050607")
	require.NoError(t, err)

	key, iv := DeriveKey([]byte("aTestPassword"), salt)

	assert.Equal(t, "c32d46b11102bb92520fd71e37853c77c165badd1a738ec665d9368fe2bf7f3d", hex.EncodeToString(key))
	assert.Equal(t, "0f616a13d869a732cfee33924d96a5f3", hex.EncodeToString(iv))
}

func TestDeriveKeyEmptyPassword(t *testing.T) {
	salt, err := hex.DecodeString("0001020304050607")
	require.NoError(t, err)

	// An empty password is weak but valid and must derive deterministically.
	key, iv := DeriveKey(nil, salt)

	assert.Equal(t, "3677509751ccf61539174d2b9635a7bf32b6a281e52169373c36f5fc52ad30fb", hex.EncodeToString(key))
	assert.Equal(t, "ad5cbbe891ace81f545d9efdddabec8f", hex.EncodeToString(iv))
}

func TestDeriveKeyDeterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixedslt")

	key1, iv1 := DeriveKey(password, salt)
	key2, iv2 := DeriveKey(password, salt)

	assert.Equal(t, key1, key2)
	assert.Equal(t, iv1, iv2)
	assert.Len(t, key1, KeySize)
	assert.Len(t, iv1, IVSize)
}

func TestDeriveKeyDifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1, _ := DeriveKey(password, []byte("salt-one"))
	key2, _ := DeriveKey(password, []byte("salt-two"))

	assert.NotEqual(t, key1, key2)
}

func TestBytesToKeyCount(t *testing.T) {
	salt, err := hex.DecodeString("0001020304050607")
	require.NoError(t, err)

	// count > 1 re-hashes each digest block, per EVP_BytesToKey.
	key, iv := BytesToKey(md5.New, []byte("aTestPassword"), salt, 5, KeySize, IVSize)

	assert.Equal(t, "8a5026ab1bb6e8bf521ae4b97395d6feae830ff15633365fbe4c82611db0022a", hex.EncodeToString(key))
	assert.Equal(t, "8ffce3c5ebf1ba621aff3d5a0aba4812", hex.EncodeToString(iv))
}

func TestBytesToKeyDigest(t *testing.T) {
	salt, err := hex.DecodeString("0001020304050607")
	require.NoError(t, err)

	key, iv := BytesToKey(sha1.New, []byte("aTestPassword"), salt, 1, KeySize, IVSize)

	assert.Equal(t, "2f0955f66ad7d15207f333c1dec1904c01aa13161f343638118901c920ad5226", hex.EncodeToString(key))
	assert.Equal(t, "099bbf41e9db7d469bf5dfedd8bab6da", hex.EncodeToString(iv))
}
