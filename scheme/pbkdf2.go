package scheme

import (
	"crypto/sha256"
	"fmt"
	"strconv"

	"golang.org/x/crypto/pbkdf2"

	"github.com/aloks98/passhash/internal/crypto"
)

// PBKDF2Config holds the configuration for PBKDF2-SHA256 hashing.
type PBKDF2Config struct {
	// Iterations is the number of key derivation rounds.
	Iterations int

	// SaltLength is the length of the random salt in bytes.
	SaltLength int

	// KeyLength is the length of the generated key in bytes.
	KeyLength int

	// Source supplies random salts. Nil means the system source.
	Source SaltSource
}

// DefaultPBKDF2Config returns secure default parameters for PBKDF2-SHA256.
// The iteration count follows OWASP recommendations.
func DefaultPBKDF2Config() *PBKDF2Config {
	return &PBKDF2Config{
		Iterations: 600000,
		SaltLength: 16,
		KeyLength:  32,
	}
}

// PBKDF2Hasher implements the Hasher and SaltedHasher interfaces using
// PBKDF2 with SHA-256.
type PBKDF2Hasher struct {
	config *PBKDF2Config
	source SaltSource
}

// NewPBKDF2Hasher creates a new PBKDF2-SHA256 hasher with the given
// configuration. If config is nil, DefaultPBKDF2Config is used.
func NewPBKDF2Hasher(config *PBKDF2Config) *PBKDF2Hasher {
	if config == nil {
		config = DefaultPBKDF2Config()
	}
	source := config.Source
	if source == nil {
		source = SystemSaltSource()
	}
	return &PBKDF2Hasher{config: config, source: source}
}

// ID returns the scheme identifier.
func (h *PBKDF2Hasher) ID() string { return IDPBKDF2 }

// Hash creates a PBKDF2 digest from a password using a fresh salt.
// Returns the digest in PHC string format: $pbkdf2-sha256$i=600000$salt$hash
func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt, err := h.source.Salt(h.config.SaltLength)
	if err != nil {
		return "", err
	}
	return h.HashWithSalt(password, salt)
}

// HashWithSalt creates a PBKDF2 digest from a password and an explicit salt.
// Deterministic given identical (password, salt, parameters).
func (h *PBKDF2Hasher) HashWithSalt(password string, salt []byte) (string, error) {
	if len(salt) == 0 {
		return "", fmt.Errorf("%w: salt must not be empty", ErrInvalidSalt)
	}

	key := pbkdf2.Key([]byte(password), salt, h.config.Iterations, h.config.KeyLength, sha256.New)

	d := &Digest{
		Scheme: IDPBKDF2,
		Params: []Param{
			{Name: "i", Value: strconv.Itoa(h.config.Iterations)},
		},
		Salt: salt,
		Key:  key,
	}
	return d.String(), nil
}

// Verify checks if a password matches a PBKDF2 digest.
func (h *PBKDF2Hasher) Verify(password, digest string) (bool, error) {
	config, d, err := decodePBKDF2Digest(digest)
	if err != nil {
		return false, err
	}

	otherKey := pbkdf2.Key([]byte(password), d.Salt, config.Iterations, config.KeyLength, sha256.New)

	return crypto.ConstantTimeCompareBytes(d.Key, otherKey), nil
}

// NeedsRehash checks if a digest was created with different parameters.
func (h *PBKDF2Hasher) NeedsRehash(digest string) bool {
	config, _, err := decodePBKDF2Digest(digest)
	if err != nil {
		return true
	}

	return config.Iterations != h.config.Iterations ||
		config.KeyLength != h.config.KeyLength
}

// decodePBKDF2Digest parses a PBKDF2 digest in PHC string format.
func decodePBKDF2Digest(digest string) (*PBKDF2Config, *Digest, error) {
	d, err := ParseDigest(digest)
	if err != nil {
		return nil, nil, err
	}
	if d.Scheme != IDPBKDF2 {
		return nil, nil, fmt.Errorf("%w: expected %s digest, got %q", ErrUnknownScheme, IDPBKDF2, d.Scheme)
	}

	iters, err := digestParamUint(d, "i", 31)
	if err != nil {
		return nil, nil, err
	}
	if iters == 0 {
		return nil, nil, fmt.Errorf("%w: iteration count must be positive", ErrMalformedDigest)
	}

	config := &PBKDF2Config{
		Iterations: int(iters),
		SaltLength: len(d.Salt),
		KeyLength:  len(d.Key),
	}
	return config, d, nil
}

// Ensure PBKDF2Hasher implements SaltedHasher.
var _ SaltedHasher = (*PBKDF2Hasher)(nil)
