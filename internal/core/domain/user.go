package domain

import "time"

// User represents a registered account. Identity is email-based; sign-in is
// blocked until the email address has been verified.
type User struct {
	UserID            string
	Email             string
	FirstName         string
	LastName          string
	PasswordHash      string
	EmailVerified     bool
	VerificationToken string
	CreatedAt         time.Time
	LastUpdatedAt     time.Time
}
