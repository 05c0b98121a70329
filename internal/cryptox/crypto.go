// Package cryptox derives and checks password verifiers. Passwords are never
// stored: each account keeps a random salt and the SHA-256 of an argon2id key
// derived from the password and that salt.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
	"golang.org/x/crypto/argon2"
)

const SaltSize = 16

func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// NewSalt returns SaltSize random bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword produces a fresh salt and the verifier for password.
func HashPassword(password []byte) (salt, verifier []byte) {
	salt = NewSalt()
	key := DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	return salt, MakeVerifier(key)
}

// CheckPassword reports whether password matches the stored salt and
// verifier. The comparison runs in constant time.
func CheckPassword(password, salt, verifier []byte) bool {
	if len(salt) == 0 || len(verifier) == 0 {
		return false
	}
	key := DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(MakeVerifier(key), verifier) == 1
}
