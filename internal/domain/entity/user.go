// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered marketplace account authenticated by email and password.
// Email is the natural key: unique, case-sensitive and never changed after creation.
type User struct {
	ID           uuid.UUID // Assigned by the credential store on insert.
	Email        string    // Login identifier.
	FirstName    string    // Display attribute, free text.
	LastName     string    // Display attribute, free text.
	PasswordHash string    // Adaptive salted digest. The plaintext password is never stored.
	CreatedAt    time.Time // Set once, when the record is created.
}
