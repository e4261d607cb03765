package bcrypt

import (
	"fmt"
	"strings"
)

const (
	// MajorVersion and MinorVersion identify the newest hash revision this
	// package understands, and the one it produces.
	MajorVersion = '2'
	MinorVersion = 'a'

	// MinCost and MaxCost bound the cost accepted by [NewSalt] and the
	// clamp applied by [GenerateSalt].
	MinCost = 4
	MaxCost = 31

	// DefaultCost is the cost used by [DefaultOptions].
	DefaultCost = 12

	// MinRounds is the smallest number of key schedule rounds a salt may
	// encode.
	MinRounds = 16

	// SaltLen is the raw salt length in bytes.
	SaltLen = 16

	// EncodedSaltLen is the length of the base64 salt field.
	EncodedSaltLen = 22
)

// Salt is the parsed form of a bcrypt salt string such as
// "$2a$12$R9h/cIPz0gi.URNNX3kh2O".
//
// A Salt is a value; two Salts describing the same string compare equal
// with ==.
type Salt struct {
	// Major is the major version, normally '2'.
	Major byte

	// Minor is the minor revision, or 0 for hashes written as "$2$".
	// Revisions 'a' and later hash the password's trailing NUL byte.
	Minor byte

	// Cost is log2 of the key schedule rounds, in [MinCost, MaxCost].
	Cost int

	// Raw is the decoded salt.
	Raw [SaltLen]byte
}

// NewSalt builds a current-version Salt from raw salt bytes and a cost.
// It returns [ErrSaltLength] unless len(raw) == [SaltLen], and
// [ErrCostRange] unless cost is in [MinCost, MaxCost].
func NewSalt(raw []byte, cost int) (Salt, error) {
	if len(raw) != SaltLen {
		return Salt{}, fmt.Errorf("%w: got %d bytes, want %d", ErrSaltLength, len(raw), SaltLen)
	}
	if cost < MinCost || cost > MaxCost {
		return Salt{}, fmt.Errorf("%w: cost %d must be in [%d, %d]", ErrCostRange, cost, MinCost, MaxCost)
	}
	s := Salt{Major: MajorVersion, Minor: MinorVersion, Cost: cost}
	copy(s.Raw[:], raw)
	return s, nil
}

// Rounds returns the number of key schedule rounds encoded by s.Cost.
func (s Salt) Rounds() uint64 { return 1 << uint(s.Cost) }

// String formats s as "$<major><minor>$<cost>$<salt>".
func (s Salt) String() string {
	var b strings.Builder
	b.Grow(7 + EncodedSaltLen)
	b.WriteByte('$')
	b.WriteByte(s.Major)
	if s.Minor != 0 {
		b.WriteByte(s.Minor)
	}
	fmt.Fprintf(&b, "$%02d$", s.Cost)
	b.WriteString(Encode(s.Raw[:]))
	return b.String()
}

// keyLen returns how many key bytes a password of length n contributes to
// the key schedule under s's revision.
func (s Salt) keyLen(n int) int {
	if s.Minor >= 'a' {
		return n + 1
	}
	return n
}

// ParseSalt parses a salt string produced by [Salt.String] or
// [GenerateSalt].
//
// Checks run in order and stop at the first failure:
//
//   - [ErrFormat] unless the text is "$<version>$<cost>$<salt>" with a one- or
//     two-character version and a two-digit cost;
//   - [ErrVersion] when the version is newer than $2a$;
//   - [ErrCostRange] when the cost is outside [0, 31];
//   - [ErrRounds] when the cost yields fewer than [MinRounds] rounds;
//   - [ErrDecode] when the salt is not bcrypt base64;
//   - [ErrSaltLength] when the salt does not decode to [SaltLen] bytes.
//
// None of these checks do any key schedule work.
func ParseSalt(text string) (Salt, error) {
	fields := strings.Split(text, "$")
	if len(fields) != 4 || fields[0] != "" {
		return Salt{}, fmt.Errorf("%w: want 4 $-delimited fields, got %d", ErrFormat, len(fields))
	}
	version, costText, encoded := fields[1], fields[2], fields[3]

	var s Salt
	switch len(version) {
	case 1:
		s.Major = version[0]
	case 2:
		s.Major, s.Minor = version[0], version[1]
	default:
		return Salt{}, fmt.Errorf("%w: version %q", ErrFormat, version)
	}
	if len(costText) != 2 || !isDigit(costText[0]) || !isDigit(costText[1]) {
		return Salt{}, fmt.Errorf("%w: cost %q is not two decimal digits", ErrFormat, costText)
	}

	if s.Major > MajorVersion || (s.Major == MajorVersion && s.Minor > MinorVersion) {
		return Salt{}, fmt.Errorf("%w: %q is newer than %c%c", ErrVersion, version, MajorVersion, MinorVersion)
	}

	cost := int(costText[0]-'0')*10 + int(costText[1]-'0')
	if cost < 0 || cost > MaxCost {
		return Salt{}, fmt.Errorf("%w: cost %d must be in [0, %d]", ErrCostRange, cost, MaxCost)
	}
	s.Cost = cost
	if s.Rounds() < MinRounds {
		return Salt{}, fmt.Errorf("%w: cost %d gives %d rounds, minimum is %d", ErrRounds, cost, s.Rounds(), MinRounds)
	}

	raw, err := Decode(encoded)
	if err != nil {
		return Salt{}, err
	}
	if len(raw) != SaltLen {
		return Salt{}, fmt.Errorf("%w: got %d bytes, want %d", ErrSaltLength, len(raw), SaltLen)
	}
	copy(s.Raw[:], raw)
	return s, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
