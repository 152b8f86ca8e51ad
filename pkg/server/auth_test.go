package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("sekrit")
	assert.NoError(t, err)
	assert.True(t, IsBcryptHash(hash))

	assert.NoError(t, VerifyPassword(hash, "sekrit"))
	assert.Error(t, VerifyPassword(hash, "wrong"))
}

func TestHashPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestIsBcryptHash(t *testing.T) {
	assert.True(t, IsBcryptHash("$2a$12$abcdefghijklmnopqrstuv"))
	assert.True(t, IsBcryptHash("$2b$12$abcdefghijklmnopqrstuv"))
	assert.True(t, IsBcryptHash("$2y$12$abcdefghijklmnopqrstuv"))
	assert.False(t, IsBcryptHash("sekrit"))
	assert.False(t, IsBcryptHash(""))
}

func TestCheckPasswordPlaintextAndHashed(t *testing.T) {
	s := New("0", "sekrit")
	assert.True(t, s.checkPassword("sekrit"))
	assert.False(t, s.checkPassword("nope"))

	hash, err := HashPassword("sekrit")
	assert.NoError(t, err)
	s = New("0", hash)
	assert.True(t, s.checkPassword("sekrit"))
	assert.False(t, s.checkPassword("nope"))
}
