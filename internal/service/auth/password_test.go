package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherAndVerifier(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	verifier := NewBcryptVerifier()

	hash, err := hasher.Hash("salainen")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "salainen", hash)

	assert.NoError(t, verifier.Compare(hash, "salainen"))
	assert.Error(t, verifier.Compare(hash, "wrong"))
	assert.Error(t, verifier.Compare("not-a-hash", "salainen"))
}

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("salainen")
	require.NoError(t, err)
	second, err := hasher.Hash("salainen")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	t.Parallel()

	// Out-of-range costs fall back to the bcrypt default rather than
	// failing at hash time.
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		hasher := NewBcryptHasher(cost)
		hash, err := hasher.Hash("salainen")
		require.NoError(t, err)

		actual, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, actual)
	}
}
