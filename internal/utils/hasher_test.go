package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash verifies against original password", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse battery staple")
		assert.NoError(t, err)
		assert.NotEqual(t, "correct horse battery staple", hash)
		assert.True(t, hasher.Verify(hash, "correct horse battery staple"))
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse battery staple")
		assert.NoError(t, err)
		assert.False(t, hasher.Verify(hash, "wrong password"))
	})

	t.Run("out of range cost falls back to default", func(t *testing.T) {
		h := NewBcryptHasher(100)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	})
}
