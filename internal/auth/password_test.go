package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFormat(t *testing.T) {
	credential := HashPassword("hunter22")

	parts := strings.SplitN(credential, ":", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], saltBytes*2)  // hex-encoded salt
	assert.Len(t, parts[1], keyBytes*2)   // hex-encoded derived key
}

func TestHashPasswordSaltRandomization(t *testing.T) {
	a := HashPassword("same-password")
	b := HashPassword("same-password")
	assert.NotEqual(t, a, b, "two hashes of the same password must differ")

	assert.True(t, VerifyPassword("same-password", a))
	assert.True(t, VerifyPassword("same-password", b))
}

func TestVerifyPassword(t *testing.T) {
	credential := HashPassword("correct horse battery staple")

	assert.True(t, VerifyPassword("correct horse battery staple", credential))
	assert.False(t, VerifyPassword("correct horse battery stable", credential))
	assert.False(t, VerifyPassword("", credential))
}

func TestVerifyPasswordMalformedStored(t *testing.T) {
	cases := []string{
		"",
		"no-separator",
		":hashonly",
		"saltonly:",
		":",
	}
	for _, stored := range cases {
		assert.False(t, VerifyPassword("anything", stored), "stored=%q", stored)
	}
}
