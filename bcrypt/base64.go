package bcrypt

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	stdAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	bcryptAlphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// invalidSymbol marks table entries with no counterpart in the other
	// alphabet.
	invalidSymbol = 0xff
)

// toBcrypt and fromBcrypt map each symbol of one alphabet to the symbol at
// the same position in the other. They are only written during init.
var toBcrypt, fromBcrypt [256]byte

func init() {
	for i := range toBcrypt {
		toBcrypt[i] = invalidSymbol
		fromBcrypt[i] = invalidSymbol
	}
	for i := 0; i < len(stdAlphabet); i++ {
		toBcrypt[stdAlphabet[i]] = bcryptAlphabet[i]
		fromBcrypt[bcryptAlphabet[i]] = stdAlphabet[i]
	}
}

// Encode returns src in bcrypt's base64 dialect: the "./A-Za-z0-9" alphabet
// with no padding.
func Encode(src []byte) string {
	std := base64.StdEncoding.EncodeToString(src)
	var b strings.Builder
	b.Grow(len(std))
	for i := 0; i < len(std); i++ {
		if std[i] == '=' {
			continue
		}
		b.WriteByte(toBcrypt[std[i]])
	}
	return b.String()
}

// Decode reverses [Encode]. Missing padding is restored before decoding.
// It returns [ErrDecode] for symbols outside the bcrypt alphabet or a length
// no encoding can produce.
func Decode(s string) ([]byte, error) {
	pad := 0
	if n := len(s) % 4; n != 0 {
		pad = 4 - n
	}
	std := make([]byte, len(s), len(s)+pad)
	for i := 0; i < len(s); i++ {
		c := fromBcrypt[s[i]]
		if c == invalidSymbol {
			return nil, fmt.Errorf("%w: illegal symbol %q at offset %d", ErrDecode, s[i], i)
		}
		std[i] = c
	}
	for i := 0; i < pad; i++ {
		std = append(std, '=')
	}

	dst := make([]byte, base64.StdEncoding.DecodedLen(len(std)))
	n, err := base64.StdEncoding.Decode(dst, std)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return dst[:n], nil
}
