// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and account-state flags.
// The posts feature reads users but never mutates them.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// IsActive indicates whether the account can log in.
	IsActive bool `gorm:"not null;default:true"`

	// IsVerified indicates whether the email address has been confirmed.
	IsVerified bool `gorm:"not null;default:false"`

	// IsSuperuser marks administrative accounts.
	IsSuperuser bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
