// Package password stores secrets as bcrypt digests.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmpty is returned when hashing a blank password.
var ErrEmpty = errors.New("password cannot be empty")

// Hash is a bcrypt digest. The plain text is never kept.
type Hash []byte

// New hashes plain with bcrypt.DefaultCost.
func New(plain string) (Hash, error) {
	return NewWithCost(plain, bcrypt.DefaultCost)
}

// NewWithCost hashes plain with the given bcrypt cost. Tests use
// bcrypt.MinCost to stay fast.
func NewWithCost(plain string, cost int) (Hash, error) {
	if plain == "" {
		return nil, ErrEmpty
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return Hash(digest), nil
}

// Matches reports whether plain is the hashed password.
func (h Hash) Matches(plain string) bool {
	if len(h) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(h, []byte(plain)) == nil
}

// String hides the digest from logs.
func (h Hash) String() string { return "[redacted]" }
