// Package bcrypt implements the OpenBSD bcrypt password hashing scheme,
// bit-compatible with the $2a$ hashes produced by other implementations.
//
// # Architecture
//
// The package is layered over [github.com/hasbyte1/go-bcrypt/blowfish]:
//
//   - [Encode] / [Decode] — bcrypt's unpadded "./A-Za-z0-9" base64 dialect
//   - [Salt], [ParseSalt], [NewSalt] — the "$2a$NN$<22 chars>" salt string
//   - [GenerateSalt], [Hash] — salt generation and the EksBlowfish hash
//   - [CompareHashAndPassword], [Cost] — verification helpers
//   - [Hasher] — a configured make/check/rehash façade
//
// # Quick start
//
//	h, err := bcrypt.NewHasher(bcrypt.DefaultOptions()) // cost 12
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := h.Make("my-secret-password")
//	ok, _   := h.Check("my-secret-password", hash) // true
//
// # Hash format
//
//	$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW
//	\__/\_/\______________________/\_____________________________/
//	 |   |          salt                        digest
//	 |   cost (log2 rounds)
//	 version
//
// The version is checked first: anything newer than $2a$ (including $2b$
// and $2y$) is rejected with [ErrVersion]. Revisions older than 'a',
// including the bare "$2$" form, are accepted and hash the password
// without its trailing NUL byte.
//
// # Cost
//
// Work doubles with each cost step. [GenerateSalt] clamps its argument into
// [MinCost, MaxCost]; [ParseSalt] rejects a cost above 31 with
// [ErrCostRange] and one below 4 with [ErrRounds].
package bcrypt
