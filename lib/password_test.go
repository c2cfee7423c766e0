package lib

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/argon2"
)

func encodeArgon2Hash(password string, salt []byte) string {
	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return fmt.Sprintf("$argon2id$v=%d$m=65536,t=1,p=4$%s$%s",
		argon2.Version,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

func TestVerifyAdminPasswordPlain(t *testing.T) {
	ok, err := VerifyAdminPassword("hunter2", "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyAdminPassword("wrong", "hunter2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyAdminPasswordArgon2(t *testing.T) {
	encoded := encodeArgon2Hash("hunter2", []byte("0123456789abcdef"))

	ok, err := VerifyAdminPassword("hunter2", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyAdminPassword("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeArgon2HashRejectsGarbage(t *testing.T) {
	_, err := DecodeArgon2Hash("$argon2id$nope")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = DecodeArgon2Hash("$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA")
	assert.ErrorIs(t, err, ErrInvalidHash)
}
