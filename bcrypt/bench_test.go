package bcrypt_test

import (
	"testing"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
)

// Note: bcrypt is intentionally slow.  BenchmarkHash_DefaultCost is the
// real-world cost; BenchmarkHash_MinCost mostly measures the fixed overhead.

func BenchmarkHash_MinCost(b *testing.B) {
	salt, _ := bcrypt.GenerateSalt(bcrypt.MinCost)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bcrypt.Hash([]byte("bench-password"), salt)
	}
}

func BenchmarkHash_DefaultCost(b *testing.B) {
	salt, _ := bcrypt.GenerateSalt(bcrypt.DefaultCost)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bcrypt.Hash([]byte("bench-password"), salt)
	}
}

func BenchmarkHasher_Check(b *testing.B) {
	h, _ := bcrypt.NewHasher(bcrypt.Options{Cost: bcrypt.MinCost})
	hash, _ := h.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check("bench-password", hash)
	}
}

func BenchmarkParseSalt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = bcrypt.ParseSalt("$2a$10$XajjQvNhvvRt5GSeFk1xFe")
	}
}
