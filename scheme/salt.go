package scheme

import (
	"fmt"

	"github.com/aloks98/passhash/internal/crypto"
)

// SaltSource supplies random salts for hashing.
// Implementations must be safe for concurrent use.
type SaltSource interface {
	// Salt returns n fresh random bytes.
	Salt(n int) ([]byte, error)
}

// SaltSourceFunc adapts a function to the SaltSource interface.
type SaltSourceFunc func(n int) ([]byte, error)

// Salt implements SaltSource.
func (f SaltSourceFunc) Salt(n int) ([]byte, error) {
	return f(n)
}

// SystemSaltSource returns the default salt source, backed by the
// operating system's cryptographically secure random number generator.
func SystemSaltSource() SaltSource {
	return systemSource{}
}

type systemSource struct{}

func (systemSource) Salt(n int) ([]byte, error) {
	b, err := crypto.GenerateRandomBytes(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return b, nil
}

// FixedSaltSource returns a source that yields the same salt on every call.
// Intended for deterministic tests only; never use it to hash real secrets.
func FixedSaltSource(salt []byte) SaltSource {
	return SaltSourceFunc(func(n int) ([]byte, error) {
		if len(salt) == 0 {
			return nil, fmt.Errorf("%w: fixed source has no salt", ErrEntropyUnavailable)
		}
		out := make([]byte, len(salt))
		copy(out, salt)
		return out, nil
	})
}
