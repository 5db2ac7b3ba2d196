package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles a user can hold. The very first account created in an empty store
// becomes an admin, everyone after that is a regular user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a user account in the system. The password is only ever
// stored as a bcrypt hash. ResetToken and ResetTokenExpiry are set together
// when a password reset is requested and cleared together when it is
// consumed.
type User struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:user"`

	ResetToken       *string    `gorm:"uniqueIndex" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
}

// HasActiveReset reports whether the user currently holds a reset token.
func (u *User) HasActiveReset() bool {
	return u.ResetToken != nil && u.ResetTokenExpiry != nil
}

// ClearResetToken removes the reset token and its expiry. Both fields are
// always cleared as a pair.
func (u *User) ClearResetToken() {
	u.ResetToken = nil
	u.ResetTokenExpiry = nil
}
