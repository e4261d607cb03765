package blowfish

// ExpandKey runs one pass of the EksBlowfish key schedule over c.
//
// The first keyLen bytes of key are XORed cyclically into the subkeys. Bytes
// past the end of key read as zero, so keyLen == len(key)+1 appends the
// trailing NUL that bcrypt revision "a" hashes include. A keyLen of zero
// leaves the subkeys untouched.
//
// The subkeys and then each substitution table are replaced, two words at a
// time, by encrypting a running block with the state being rewritten. When
// salt is non-empty the block is XORed with the next 64 bits of salt before
// each encryption, cycling over salt as needed.
func (c *Cipher) ExpandKey(salt, key []byte, keyLen int) {
	if keyLen > 0 {
		j := 0
		for i := range c.p {
			c.p[i] ^= keyWord(key, keyLen, &j)
		}
	}

	var l, r uint32
	j := 0
	next := func(t []uint32) {
		for i := 0; i < len(t); i += 2 {
			if len(salt) > 0 {
				l ^= saltWord(salt, &j)
				r ^= saltWord(salt, &j)
			}
			l, r = c.Encrypt(l, r)
			t[i], t[i+1] = l, r
		}
	}
	next(c.p[:])
	next(c.s0[:])
	next(c.s1[:])
	next(c.s2[:])
	next(c.s3[:])
}

// keyWord returns the next big-endian word of the key stream formed by the
// first keyLen bytes of key, zero-extended, advancing pos circularly.
func keyWord(key []byte, keyLen int, pos *int) uint32 {
	var w uint32
	j := *pos
	for i := 0; i < 4; i++ {
		var b byte
		if j < len(key) {
			b = key[j]
		}
		w = w<<8 | uint32(b)
		j++
		if j >= keyLen {
			j = 0
		}
	}
	*pos = j
	return w
}

// saltWord returns the next big-endian word of salt, advancing pos
// circularly.
func saltWord(salt []byte, pos *int) uint32 {
	var w uint32
	j := *pos
	for i := 0; i < 4; i++ {
		w = w<<8 | uint32(salt[j])
		j++
		if j >= len(salt) {
			j = 0
		}
	}
	*pos = j
	return w
}
