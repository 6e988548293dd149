package ports

import (
	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
)

// PasswordHasher hashes plaintext passwords and verifies them against stored
// digests. The domain never sees plaintext beyond this boundary.
type PasswordHasher interface {
	// Hash produces a one-way digest of the plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the digest.
	Verify(hash, password string) bool
}

// AuthClaims is the identity carried by a session token.
type AuthClaims struct {
	AccountID kernel.UUID
	Login     string
	Role      account.Role
}

// TokenProvider issues and verifies signed session tokens.
type TokenProvider interface {
	// Issue creates a signed token embedding the given claims.
	Issue(claims AuthClaims) (string, error)

	// Verify parses and validates a token, returning the embedded claims.
	// Returns an error for expired, malformed, or tampered tokens.
	Verify(token string) (AuthClaims, error)
}
