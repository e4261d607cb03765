package bcrypt

import "errors"

// Sentinel errors returned by this package.
//
// Errors are wrapped with context, so compare with [errors.Is]:
//
//	_, err := bcrypt.Hash(password, salt)
//	if errors.Is(err, bcrypt.ErrVersion) {
//	    // produced by a newer bcrypt revision
//	}
var (
	// ErrVersion is returned when a salt or hash carries a version newer
	// than $2a$.
	ErrVersion = errors.New("bcrypt: unsupported hash version")

	// ErrFormat is returned when a salt string is not made of the expected
	// $-delimited fields.
	ErrFormat = errors.New("bcrypt: malformed salt string")

	// ErrCostRange is returned when a cost is outside the representable
	// range.
	ErrCostRange = errors.New("bcrypt: cost out of range")

	// ErrRounds is returned when a cost decodes to fewer than [MinRounds]
	// key schedule rounds.
	ErrRounds = errors.New("bcrypt: too few rounds")

	// ErrSaltLength is returned when a salt does not hold exactly [SaltLen]
	// raw bytes.
	ErrSaltLength = errors.New("bcrypt: invalid salt length")

	// ErrDecode is returned when text is not valid bcrypt base64.
	ErrDecode = errors.New("bcrypt: invalid base64 encoding")

	// ErrInvalidHash is returned when a full hash string is too short or
	// carries a digest of the wrong size.
	ErrInvalidHash = errors.New("bcrypt: invalid hash string")

	// ErrMismatchedHashAndPassword is returned by [CompareHashAndPassword]
	// when the password does not produce the hash.
	ErrMismatchedHashAndPassword = errors.New("bcrypt: hash is not the hash of the given password")

	// ErrInvalidOption is returned by [NewHasher] for an out-of-range option.
	ErrInvalidOption = errors.New("bcrypt: invalid option value")
)
