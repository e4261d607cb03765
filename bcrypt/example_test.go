package bcrypt_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
)

// Example_hasher demonstrates the recommended make/check flow.
func Example_hasher() {
	h, err := bcrypt.NewHasher(bcrypt.Options{Cost: bcrypt.MinCost})
	if err != nil {
		log.Fatal(err)
	}

	hash, _ := h.Make("hunter2")
	ok, _ := h.Check("hunter2", hash)
	fmt.Println(ok)
	// Output: true
}

// ExampleHash hashes a password under an explicit salt.
func ExampleHash() {
	hash, err := bcrypt.Hash([]byte("U*U"), "$2a$05$CCCCCCCCCCCCCCCCCCCCC.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
	// Output: $2a$05$CCCCCCCCCCCCCCCCCCCCC.E5YPO9kmyuRGyh0XouQYb4YMJKvyOeW
}

// ExampleParseSalt shows how salt strings are validated.
func ExampleParseSalt() {
	s, err := bcrypt.ParseSalt("$2a$10$XajjQvNhvvRt5GSeFk1xFe")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%c%c cost=%d rounds=%d\n", s.Major, s.Minor, s.Cost, s.Rounds())

	_, err = bcrypt.ParseSalt("$2b$10$XajjQvNhvvRt5GSeFk1xFe")
	fmt.Println(errors.Is(err, bcrypt.ErrVersion))
	// Output:
	// 2a cost=10 rounds=1024
	// true
}

// ExampleCompareHashAndPassword verifies a stored hash.
func ExampleCompareHashAndPassword() {
	stored := "$2a$06$DCq7YPn5Rq63x1Lad4cll.TV4S6ytwfsfvkgY8jIucDrjc8deX1s."
	fmt.Println(bcrypt.CompareHashAndPassword(stored, []byte("")))
	fmt.Println(bcrypt.CompareHashAndPassword(stored, []byte("guess")))
	// Output:
	// <nil>
	// bcrypt: hash is not the hash of the given password
}
