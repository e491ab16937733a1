// Package service defines contracts for domain services whose concrete
// implementations live under internal/infra.
package service

// PasswordHasher abstracts salted password hashing so the use cases never
// touch bcrypt directly.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
