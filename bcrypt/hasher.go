package bcrypt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// Options configures a [Hasher].
type Options struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [MinCost (4), MaxCost (31)].  Default: [DefaultCost] (12).
	Cost int

	// Rand supplies salt entropy.  Nil selects crypto/rand.
	Rand io.Reader
}

// DefaultOptions returns Options with [DefaultCost] and crypto/rand.
func DefaultOptions() Options {
	return Options{Cost: DefaultCost, Rand: rand.Reader}
}

// Hasher hashes and verifies passwords at a fixed cost.
//
// Every call to [Hasher.Make] draws a fresh 128-bit salt, so callers never
// manage salts themselves.
//
// # Thread safety
//
// Hasher is immutable after construction and safe for concurrent use,
// provided its Rand source is.
type Hasher struct {
	cost int
	rand io.Reader
}

// NewHasher constructs a Hasher with the provided options.
// Returns [ErrInvalidOption] if Cost is outside [MinCost, MaxCost].  Unlike
// [GenerateSalt], the cost is never clamped.
func NewHasher(opts Options) (*Hasher, error) {
	if opts.Cost < MinCost || opts.Cost > MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, MinCost, MaxCost)
	}
	r := opts.Rand
	if r == nil {
		r = rand.Reader
	}
	return &Hasher{cost: opts.Cost, rand: r}, nil
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int { return h.cost }

// Make hashes password under a freshly generated salt and returns the full
// hash string (e.g., "$2a$12$...").
func (h *Hasher) Make(password string) (string, error) {
	salt, err := GenerateSaltFrom(h.rand, h.cost)
	if err != nil {
		return "", err
	}
	hash, err := Hash([]byte(password), salt)
	if err != nil {
		return "", fmt.Errorf("bcrypt: failed to hash password: %w", err)
	}
	return hash, nil
}

// Check verifies that password matches hash.
// Returns (false, nil) on mismatch; never returns ErrMismatchedHashAndPassword.
func (h *Hasher) Check(password, hash string) (bool, error) {
	err := CompareHashAndPassword(hash, []byte(password))
	if errors.Is(err, ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// NeedsRehash returns true if the cost encoded in hash differs from the
// configured cost, or if hash predates the current revision.
func (h *Hasher) NeedsRehash(hash string) (bool, error) {
	s, err := h.Info(hash)
	if err != nil {
		return false, err
	}
	return s.Cost != h.cost || s.Major != MajorVersion || s.Minor != MinorVersion, nil
}

// Info parses the salt portion of hash without verifying anything else.
func (h *Hasher) Info(hash string) (Salt, error) {
	salt, _, err := splitHash(hash)
	if err != nil {
		return Salt{}, err
	}
	return ParseSalt(salt)
}
