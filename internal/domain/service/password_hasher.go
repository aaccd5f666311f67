// Package service declares the ports the use cases need from infrastructure:
// hashing, tokens, invoices, rendering, storage and rate limiting.
package service

// PasswordHasher hashes account passwords.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
