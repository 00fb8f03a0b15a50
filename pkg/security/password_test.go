package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("Reception@123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Reception@123", hash)

	assert.NoError(t, hasher.Compare(hash, "Reception@123"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
}

func TestHash_TooShort(t *testing.T) {
	hasher := NewBcryptHasher(4)

	_, err := hasher.Hash("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestHash_Salted(t *testing.T) {
	hasher := NewBcryptHasher(4)

	h1, err := hasher.Hash("Doctor@123")
	assert.NoError(t, err)
	h2, err := hasher.Hash("Doctor@123")
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	hasher := NewBcryptHasher(100)

	hash, err := hasher.Hash("Admin@123")
	assert.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "Admin@123"))
}
