// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "secondchance/internal/errors"

// ErrPasswordTooLong is returned by Hash when the plaintext exceeds the algorithm's input limit.
var ErrPasswordTooLong = errors.New("password exceeds hasher input limit")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	// A mismatch is (false, nil); an error means the stored hash itself is unusable.
	Check(password, hash string) (bool, error)
}
