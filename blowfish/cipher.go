// Package blowfish implements the parts of the Blowfish block cipher that
// bcrypt needs: the pi-initialized cipher state, single-block encryption of
// two 32-bit halves, and the EksBlowfish key expansion.
//
// It is deliberately not a general-purpose block cipher. There is no
// decryption, no crypto/cipher.Block adapter and no key-size validation; use
// golang.org/x/crypto/blowfish for that.
//
// # Thread safety
//
// A [Cipher] is mutated by every call to [Cipher.ExpandKey] and must be owned
// by a single goroutine. Distinct Cipher values share nothing and may be used
// concurrently.
package blowfish

// Rounds is the number of Feistel rounds applied per block.
const Rounds = 16

// Cipher holds the mutable Blowfish state: 18 round subkeys and four 256-entry
// substitution tables.
type Cipher struct {
	p              [Rounds + 2]uint32
	s0, s1, s2, s3 [256]uint32
}

// NewCipher returns a Cipher loaded with the standard initial constants.
// The state is not keyed; call [Cipher.ExpandKey] before encrypting.
func NewCipher() *Cipher {
	c := new(Cipher)
	c.Reset()
	return c
}

// Reset reloads the initial constants, discarding any previous key material.
func (c *Cipher) Reset() {
	c.p = initP
	c.s0 = initS0
	c.s1 = initS1
	c.s2 = initS2
	c.s3 = initS3
}

// f is the Blowfish round function.
func (c *Cipher) f(x uint32) uint32 {
	return ((c.s0[x>>24] + c.s1[x>>16&0xff]) ^ c.s2[x>>8&0xff]) + c.s3[x&0xff]
}

// Encrypt enciphers the 64-bit block (l, r) with the current state and
// returns the result as two halves.
func (c *Cipher) Encrypt(l, r uint32) (uint32, uint32) {
	l ^= c.p[0]
	for i := 1; i < Rounds+1; i += 2 {
		r ^= c.f(l) ^ c.p[i]
		l ^= c.f(r) ^ c.p[i+1]
	}
	r ^= c.p[Rounds+1]
	return r, l
}
