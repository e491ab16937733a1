// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account. The database generates the numeric ID.
// PasswordHash always holds a bcrypt hash, never a plaintext password.
type User struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string
	ProfileImage string // Stored upload filename, empty when the user never set one.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
