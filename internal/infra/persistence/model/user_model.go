// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates IDs via gen_random_uuid()
// and enforces email uniqueness with the users_email_key index. Names are unbounded
// free text, so no column carries a length limit.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:text;uniqueIndex:users_email_key;not null"`
	FirstName    string    `gorm:"type:text;not null;default:''"`
	LastName     string    `gorm:"type:text;not null;default:''"`
	PasswordHash string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
