package passhash

import (
	"fmt"

	"github.com/aloks98/passhash/scheme"
)

// Scheme selects the hashing algorithm new digests are produced with.
type Scheme string

const (
	// SchemeBcrypt uses bcrypt (modular-crypt format).
	SchemeBcrypt Scheme = scheme.IDBcrypt

	// SchemeArgon2id uses Argon2id (PHC format).
	SchemeArgon2id Scheme = scheme.IDArgon2id

	// SchemeScrypt uses scrypt (PHC format).
	SchemeScrypt Scheme = scheme.IDScrypt

	// SchemePBKDF2 uses PBKDF2-SHA256 (PHC format).
	SchemePBKDF2 Scheme = scheme.IDPBKDF2
)

// DefaultScheme is the scheme used when none is configured.
const DefaultScheme = SchemeBcrypt

// Config holds all configuration for a Service.
type Config struct {
	// Scheme is the algorithm used for new digests. Verification accepts
	// digests from any supported scheme regardless of this setting.
	Scheme Scheme

	// Bcrypt holds bcrypt parameters. Nil means scheme defaults.
	Bcrypt *scheme.BcryptConfig

	// Argon2 holds Argon2id parameters. Nil means scheme defaults.
	Argon2 *scheme.Argon2Config

	// Scrypt holds scrypt parameters. Nil means scheme defaults.
	Scrypt *scheme.ScryptConfig

	// PBKDF2 holds PBKDF2-SHA256 parameters. Nil means scheme defaults.
	PBKDF2 *scheme.PBKDF2Config

	// Source supplies random salts for all schemes.
	// Nil means the system entropy source.
	Source scheme.SaltSource
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Scheme: DefaultScheme,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Scheme {
	case SchemeBcrypt, SchemeArgon2id, SchemeScrypt, SchemePBKDF2:
	default:
		return fmt.Errorf("%w: unsupported scheme: %s", ErrConfigInvalid, c.Scheme)
	}

	if c.Argon2 != nil {
		if c.Argon2.Memory == 0 || c.Argon2.Iterations == 0 || c.Argon2.Parallelism == 0 {
			return fmt.Errorf("%w: argon2 memory, iterations, and parallelism must be positive", ErrConfigInvalid)
		}
		if c.Argon2.SaltLength < 8 || c.Argon2.KeyLength < 16 {
			return fmt.Errorf("%w: argon2 salt must be at least 8 bytes and key at least 16", ErrConfigInvalid)
		}
	}

	if c.Scrypt != nil {
		if c.Scrypt.N <= 1 || c.Scrypt.N&(c.Scrypt.N-1) != 0 {
			return fmt.Errorf("%w: scrypt N must be a power of two greater than 1", ErrConfigInvalid)
		}
		if c.Scrypt.R <= 0 || c.Scrypt.P <= 0 {
			return fmt.Errorf("%w: scrypt r and p must be positive", ErrConfigInvalid)
		}
		if c.Scrypt.SaltLength < 8 || c.Scrypt.KeyLength < 16 {
			return fmt.Errorf("%w: scrypt salt must be at least 8 bytes and key at least 16", ErrConfigInvalid)
		}
	}

	if c.PBKDF2 != nil {
		if c.PBKDF2.Iterations <= 0 {
			return fmt.Errorf("%w: pbkdf2 iterations must be positive", ErrConfigInvalid)
		}
		if c.PBKDF2.SaltLength < 8 || c.PBKDF2.KeyLength < 16 {
			return fmt.Errorf("%w: pbkdf2 salt must be at least 8 bytes and key at least 16", ErrConfigInvalid)
		}
	}

	return nil
}
