// Package scheme implements password hashing schemes behind a common interface.
//
// Every scheme produces a self-describing digest string that embeds the
// algorithm tag, its cost parameters, and the salt, so a digest can later be
// verified without any out-of-band state. Argon2id, scrypt, and PBKDF2 use
// the PHC string format; bcrypt uses its native modular-crypt format.
package scheme

import "errors"

// Scheme identifiers as they appear in digest strings.
const (
	IDBcrypt   = "bcrypt"
	IDArgon2id = "argon2id"
	IDScrypt   = "scrypt"
	IDPBKDF2   = "pbkdf2-sha256"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrEntropyUnavailable means the random source could not produce salt bytes.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrPasswordTooLong means the plaintext exceeds the scheme's maximum input length.
	ErrPasswordTooLong = errors.New("password exceeds maximum length for scheme")

	// ErrInvalidSalt means a caller-supplied salt is malformed.
	ErrInvalidSalt = errors.New("salt is invalid")

	// ErrMalformedDigest means a digest string does not match the expected layout.
	ErrMalformedDigest = errors.New("digest is malformed")

	// ErrUnknownScheme means a digest carries a tag no registered scheme understands.
	ErrUnknownScheme = errors.New("unknown hashing scheme")
)

// Hasher defines the interface for password hashing schemes.
type Hasher interface {
	// ID returns the scheme identifier embedded in produced digests.
	ID() string

	// Hash creates a digest from a password using a fresh random salt.
	Hash(password string) (string, error)

	// Verify checks if a password matches a digest.
	Verify(password, digest string) (bool, error)

	// NeedsRehash checks if a digest needs to be regenerated.
	// Returns true if the digest was created with different parameters.
	NeedsRehash(digest string) bool
}

// SaltedHasher is implemented by schemes that can hash against a
// caller-supplied salt. Hashing is deterministic given identical
// (password, salt, parameters). bcrypt generates its salt internally
// and does not implement this.
type SaltedHasher interface {
	Hasher

	// HashWithSalt creates a digest from a password and an explicit salt.
	// Fails with ErrInvalidSalt if the salt is empty.
	HashWithSalt(password string, salt []byte) (string, error)
}
