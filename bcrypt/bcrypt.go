package bcrypt

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/hasbyte1/go-bcrypt/blowfish"
)

const (
	// magicText is enciphered to produce the digest.
	magicText = "OrpheanBeholderScryDoubt"

	// magicWords is the number of 32-bit words in magicText.
	magicWords = len(magicText) / 4

	// encryptRounds is how many times each magic block is enciphered.
	encryptRounds = 64

	// DigestLen is the digest length in bytes. The last byte of the
	// enciphered magic text is dropped.
	DigestLen = len(magicText) - 1

	// EncodedDigestLen is the length of the base64 digest field.
	EncodedDigestLen = 31
)

// GenerateSalt returns a fresh salt string with 16 bytes from crypto/rand.
// cost is clamped into [MinCost, MaxCost].
func GenerateSalt(cost int) (string, error) {
	return GenerateSaltFrom(rand.Reader, cost)
}

// GenerateSaltFrom is [GenerateSalt] with an explicit entropy source. r must
// be a cryptographically secure, non-repeating source outside of tests.
func GenerateSaltFrom(r io.Reader, cost int) (string, error) {
	cost = min(max(cost, MinCost), MaxCost)
	raw := make([]byte, SaltLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return "", fmt.Errorf("bcrypt: failed to read salt: %w", err)
	}
	s, err := NewSalt(raw, cost)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// Hash hashes password with the salt string salt and returns salt followed
// by the 31-character encoded digest, e.g.
//
//	$2a$04$......................w74bL5gU7LSJClZClCa.Pkz14aTv/XO
//
// The salt is fully validated by [ParseSalt] before any hashing work starts.
// Hash is deterministic: the same inputs always give the same output.
//
// Only the first 72 bytes of the key stream reach the cipher, so longer
// passwords are effectively truncated.
func Hash(password []byte, salt string) (string, error) {
	s, err := ParseSalt(salt)
	if err != nil {
		return "", err
	}
	return salt + Encode(digest(password, s)), nil
}

// digest runs EksBlowfish over password and s and enciphers the magic text.
func digest(password []byte, s Salt) []byte {
	keyLen := s.keyLen(len(password))

	c := blowfish.NewCipher()
	c.ExpandKey(s.Raw[:], password, keyLen)
	for i, rounds := uint64(0), s.Rounds(); i < rounds; i++ {
		// Password before salt. Reversing this breaks compatibility with
		// every other implementation.
		c.ExpandKey(nil, password, keyLen)
		c.ExpandKey(nil, s.Raw[:], SaltLen)
	}

	magic := []byte(magicText)
	var words [magicWords]uint32
	for i := range words {
		words[i] = binary.BigEndian.Uint32(magic[4*i:])
	}
	for i := 0; i < encryptRounds; i++ {
		for j := 0; j < magicWords; j += 2 {
			words[j], words[j+1] = c.Encrypt(words[j], words[j+1])
		}
	}

	out := make([]byte, 4*magicWords)
	for i, w := range words {
		binary.BigEndian.PutUint32(out[4*i:], w)
	}
	return out[:DigestLen]
}

// splitHash separates a full hash into its salt string and encoded digest.
func splitHash(hashed string) (salt, encodedDigest string, err error) {
	i := strings.LastIndexByte(hashed, '$')
	end := i + 1 + EncodedSaltLen
	if i < 0 || end > len(hashed) {
		return "", "", fmt.Errorf("%w: too short", ErrInvalidHash)
	}
	salt, encodedDigest = hashed[:end], hashed[end:]
	if len(encodedDigest) != EncodedDigestLen {
		return "", "", fmt.Errorf("%w: digest is %d characters, want %d",
			ErrInvalidHash, len(encodedDigest), EncodedDigestLen)
	}
	return salt, encodedDigest, nil
}

// CompareHashAndPassword reports whether hashed is the hash of password.
// It returns nil on success, [ErrMismatchedHashAndPassword] on mismatch, or
// the parse error for a malformed hash. The final comparison runs in
// constant time.
func CompareHashAndPassword(hashed string, password []byte) error {
	salt, _, err := splitHash(hashed)
	if err != nil {
		return err
	}
	computed, err := Hash(password, salt)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(computed), []byte(hashed)) != 1 {
		return ErrMismatchedHashAndPassword
	}
	return nil
}

// Cost returns the cost recorded in a salt or full hash string.
func Cost(hashed string) (int, error) {
	salt := hashed
	if len(hashed) > len("$2a$00$")+EncodedSaltLen {
		var err error
		if salt, _, err = splitHash(hashed); err != nil {
			return 0, err
		}
	}
	s, err := ParseSalt(salt)
	if err != nil {
		return 0, err
	}
	return s.Cost, nil
}
