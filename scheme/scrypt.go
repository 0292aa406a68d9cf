package scheme

import (
	"fmt"
	"math/bits"
	"strconv"

	"golang.org/x/crypto/scrypt"

	"github.com/aloks98/passhash/internal/crypto"
)

// ScryptConfig holds the configuration for scrypt hashing.
type ScryptConfig struct {
	// N is the CPU/memory cost parameter. Must be a power of two greater than 1.
	N int

	// R is the block size parameter.
	R int

	// P is the parallelization parameter.
	P int

	// SaltLength is the length of the random salt in bytes.
	SaltLength int

	// KeyLength is the length of the generated key in bytes.
	KeyLength int

	// Source supplies random salts. Nil means the system source.
	Source SaltSource
}

// DefaultScryptConfig returns secure default parameters for scrypt.
func DefaultScryptConfig() *ScryptConfig {
	return &ScryptConfig{
		N:          1 << 15, // 32 MiB with r=8
		R:          8,
		P:          1,
		SaltLength: 16,
		KeyLength:  32,
	}
}

// ScryptHasher implements the Hasher and SaltedHasher interfaces using scrypt.
type ScryptHasher struct {
	config *ScryptConfig
	source SaltSource
}

// NewScryptHasher creates a new scrypt hasher with the given configuration.
// If config is nil, DefaultScryptConfig is used.
func NewScryptHasher(config *ScryptConfig) *ScryptHasher {
	if config == nil {
		config = DefaultScryptConfig()
	}
	source := config.Source
	if source == nil {
		source = SystemSaltSource()
	}
	return &ScryptHasher{config: config, source: source}
}

// ID returns the scheme identifier.
func (h *ScryptHasher) ID() string { return IDScrypt }

// Hash creates an scrypt digest from a password using a fresh salt.
// Returns the digest in PHC string format: $scrypt$ln=15,r=8,p=1$salt$hash
func (h *ScryptHasher) Hash(password string) (string, error) {
	salt, err := h.source.Salt(h.config.SaltLength)
	if err != nil {
		return "", err
	}
	return h.HashWithSalt(password, salt)
}

// HashWithSalt creates an scrypt digest from a password and an explicit salt.
// Deterministic given identical (password, salt, parameters).
func (h *ScryptHasher) HashWithSalt(password string, salt []byte) (string, error) {
	if len(salt) == 0 {
		return "", fmt.Errorf("%w: salt must not be empty", ErrInvalidSalt)
	}

	key, err := scrypt.Key([]byte(password), salt, h.config.N, h.config.R, h.config.P, h.config.KeyLength)
	if err != nil {
		return "", err
	}

	d := &Digest{
		Scheme: IDScrypt,
		Params: []Param{
			{Name: "ln", Value: strconv.Itoa(log2(h.config.N))},
			{Name: "r", Value: strconv.Itoa(h.config.R)},
			{Name: "p", Value: strconv.Itoa(h.config.P)},
		},
		Salt: salt,
		Key:  key,
	}
	return d.String(), nil
}

// Verify checks if a password matches an scrypt digest.
func (h *ScryptHasher) Verify(password, digest string) (bool, error) {
	config, d, err := decodeScryptDigest(digest)
	if err != nil {
		return false, err
	}

	otherKey, err := scrypt.Key([]byte(password), d.Salt, config.N, config.R, config.P, config.KeyLength)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
	}

	return crypto.ConstantTimeCompareBytes(d.Key, otherKey), nil
}

// NeedsRehash checks if a digest was created with different parameters.
func (h *ScryptHasher) NeedsRehash(digest string) bool {
	config, _, err := decodeScryptDigest(digest)
	if err != nil {
		return true
	}

	return config.N != h.config.N ||
		config.R != h.config.R ||
		config.P != h.config.P ||
		config.KeyLength != h.config.KeyLength
}

// decodeScryptDigest parses an scrypt digest in PHC string format.
func decodeScryptDigest(digest string) (*ScryptConfig, *Digest, error) {
	d, err := ParseDigest(digest)
	if err != nil {
		return nil, nil, err
	}
	if d.Scheme != IDScrypt {
		return nil, nil, fmt.Errorf("%w: expected %s digest, got %q", ErrUnknownScheme, IDScrypt, d.Scheme)
	}

	ln, err := digestParamUint(d, "ln", 6)
	if err != nil {
		return nil, nil, err
	}
	if ln == 0 || ln >= 31 {
		return nil, nil, fmt.Errorf("%w: ln parameter out of range", ErrMalformedDigest)
	}
	r, err := digestParamUint(d, "r", 16)
	if err != nil {
		return nil, nil, err
	}
	p, err := digestParamUint(d, "p", 16)
	if err != nil {
		return nil, nil, err
	}

	config := &ScryptConfig{
		N:          1 << ln,
		R:          int(r),
		P:          int(p),
		SaltLength: len(d.Salt),
		KeyLength:  len(d.Key),
	}
	return config, d, nil
}

// log2 returns the base-2 logarithm of n, which must be a power of two.
func log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// Ensure ScryptHasher implements SaltedHasher.
var _ SaltedHasher = (*ScryptHasher)(nil)
