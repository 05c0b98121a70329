package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveMasterKey(password, salt)
	key2 := DeriveMasterKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveMasterKey_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveMasterKey(password, []byte("salt-1"))
	key2 := DeriveMasterKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestMakeVerifier_Length(t *testing.T) {
	v := MakeVerifier([]byte("key"))
	assert.Len(t, v, 32)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	salt, verifier := HashPassword([]byte("123456"))
	require.Len(t, salt, SaltSize)
	require.Len(t, verifier, 32)

	assert.True(t, CheckPassword([]byte("123456"), salt, verifier))
	assert.False(t, CheckPassword([]byte("1234567"), salt, verifier))
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	s1, v1 := HashPassword([]byte("same"))
	s2, v2 := HashPassword([]byte("same"))
	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, v1, v2)
}

func TestCheckPassword_EmptyStoredValues(t *testing.T) {
	assert.False(t, CheckPassword([]byte("x"), nil, []byte("v")))
	assert.False(t, CheckPassword([]byte("x"), []byte("s"), nil))
}
