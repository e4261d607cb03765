package bcrypt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
)

// testCost keeps the suite fast.  Production code should use DefaultCost.
const testCost = bcrypt.MinCost

func newTestHasher(t *testing.T) *bcrypt.Hasher {
	t.Helper()
	h, err := bcrypt.NewHasher(bcrypt.Options{Cost: testCost})
	require.NoError(t, err)
	return h
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructor
// ──────────────────────────────────────────────────────────────────────────────

func TestNewHasher_Valid(t *testing.T) {
	for _, cost := range []int{bcrypt.MinCost, 10, 12, bcrypt.MaxCost} {
		h, err := bcrypt.NewHasher(bcrypt.Options{Cost: cost})
		require.NoError(t, err, "cost %d", cost)
		assert.Equal(t, cost, h.Cost())
	}
}

func TestNewHasher_InvalidCost(t *testing.T) {
	for _, cost := range []int{bcrypt.MinCost - 1, 0, -1, bcrypt.MaxCost + 1, 99} {
		h, err := bcrypt.NewHasher(bcrypt.Options{Cost: cost})
		assert.ErrorIs(t, err, bcrypt.ErrInvalidOption, "cost %d", cost)
		assert.Nil(t, h)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := bcrypt.DefaultOptions()
	assert.Equal(t, bcrypt.DefaultCost, opts.Cost)
	assert.NotNil(t, opts.Rand)
}

// ──────────────────────────────────────────────────────────────────────────────
// Make
// ──────────────────────────────────────────────────────────────────────────────

func TestHasher_Make_ReturnsHash(t *testing.T) {
	hash, err := newTestHasher(t).Make("password123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"), hash)
	assert.Len(t, hash, 60)
}

func TestHasher_Make_ProducesUniqueHashes(t *testing.T) {
	h := newTestHasher(t)
	h1, err := h.Make("same-password")
	require.NoError(t, err)
	h2, err := h.Make("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "different salts must give different hashes")
}

func TestHasher_Make_UsesConfiguredRand(t *testing.T) {
	h, err := bcrypt.NewHasher(bcrypt.Options{Cost: 5, Rand: &sequentialBytes{}})
	require.NoError(t, err)
	hash, err := h.Make("password")
	require.NoError(t, err)
	assert.Equal(t, knownVectors[4].want, hash)
}

func TestHasher_Make_RandFailure(t *testing.T) {
	h, err := bcrypt.NewHasher(bcrypt.Options{Cost: testCost, Rand: failingReader{}})
	require.NoError(t, err)
	_, err = h.Make("password")
	assert.Error(t, err)
}

func TestHasher_Make_EmptyPassword(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Make("")
	require.NoError(t, err)
	ok, err := h.Check("", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Check
// ──────────────────────────────────────────────────────────────────────────────

func TestHasher_Check(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Make("hunter2")
	require.NoError(t, err)

	ok, err := h.Check("hunter2", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Check("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_Check_OtherCost(t *testing.T) {
	// A hasher verifies hashes made at any cost.
	ok, err := newTestHasher(t).Check("U*U", knownVectors[1].want)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasher_Check_InvalidHash(t *testing.T) {
	h := newTestHasher(t)
	for _, hash := range []string{"", "not-a-hash", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"} {
		ok, err := h.Check("password", hash)
		assert.Error(t, err, "hash %q", hash)
		assert.False(t, ok)
	}
	ok, err := h.Check("password", "$2y$04$"+strings.Repeat(".", 53))
	assert.ErrorIs(t, err, bcrypt.ErrVersion)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// NeedsRehash / Info
// ──────────────────────────────────────────────────────────────────────────────

func TestHasher_NeedsRehash(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Make("password")
	require.NoError(t, err)

	needs, err := h.NeedsRehash(hash)
	require.NoError(t, err)
	assert.False(t, needs, "same cost")

	h5, err := bcrypt.NewHasher(bcrypt.Options{Cost: 5})
	require.NoError(t, err)
	needs, err = h5.NeedsRehash(hash)
	require.NoError(t, err)
	assert.True(t, needs, "different cost")

	legacy := strings.Replace(knownVectors[3].want, "$2a$", "$2$", 1)
	needs, err = h.NeedsRehash(legacy)
	require.NoError(t, err)
	assert.True(t, needs, "older revision")

	_, err = h.NeedsRehash("garbage")
	assert.ErrorIs(t, err, bcrypt.ErrInvalidHash)
}

func TestHasher_Info(t *testing.T) {
	s, err := newTestHasher(t).Info(knownVectors[2].want)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Cost)
	assert.Equal(t, "$2a$10$XajjQvNhvvRt5GSeFk1xFe", s.String())
}
