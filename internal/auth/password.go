package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 100000
	keyBytes   = 64
)

// HashPassword derives a pbkdf2-sha512 credential and returns it as
// "salt:hash" with both parts hex-encoded. The salt is random, so two calls
// with the same password never produce the same credential.
func HashPassword(password string) string {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	key := pbkdf2.Key([]byte(password), []byte(hex.EncodeToString(salt)), iterations, keyBytes, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key)
}

// VerifyPassword recomputes the credential with the stored salt and compares.
// Fails closed when the stored value is missing either part. The comparison
// is plain equality; this is not hardened against timing side channels.
func VerifyPassword(password, stored string) bool {
	salt, hash, found := strings.Cut(stored, ":")
	if !found || salt == "" || hash == "" {
		return false
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyBytes, sha512.New)
	return hex.EncodeToString(key) == hash
}
