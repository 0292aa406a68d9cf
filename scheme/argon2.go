package scheme

import (
	"fmt"
	"strconv"

	"golang.org/x/crypto/argon2"

	"github.com/aloks98/passhash/internal/crypto"
)

// Argon2Config holds the configuration for Argon2id hashing.
type Argon2Config struct {
	// Memory is the amount of memory used in KiB.
	Memory uint32

	// Iterations is the number of passes over the memory.
	Iterations uint32

	// Parallelism is the number of threads to use.
	Parallelism uint8

	// SaltLength is the length of the random salt in bytes.
	SaltLength uint32

	// KeyLength is the length of the generated key in bytes.
	KeyLength uint32

	// Source supplies random salts. Nil means the system source.
	Source SaltSource
}

// DefaultArgon2Config returns secure default parameters for Argon2id.
// These follow OWASP recommendations for password storage.
func DefaultArgon2Config() *Argon2Config {
	return &Argon2Config{
		Memory:      64 * 1024, // 64 MiB
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Argon2Hasher implements the Hasher and SaltedHasher interfaces using Argon2id.
type Argon2Hasher struct {
	config *Argon2Config
	source SaltSource
}

// NewArgon2Hasher creates a new Argon2id hasher with the given configuration.
// If config is nil, DefaultArgon2Config is used.
func NewArgon2Hasher(config *Argon2Config) *Argon2Hasher {
	if config == nil {
		config = DefaultArgon2Config()
	}
	source := config.Source
	if source == nil {
		source = SystemSaltSource()
	}
	return &Argon2Hasher{config: config, source: source}
}

// ID returns the scheme identifier.
func (h *Argon2Hasher) ID() string { return IDArgon2id }

// Hash creates an Argon2id digest from a password using a fresh salt.
// Returns the digest in PHC string format: $argon2id$v=19$m=65536,t=3,p=2$salt$hash
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt, err := h.source.Salt(int(h.config.SaltLength))
	if err != nil {
		return "", err
	}
	return h.HashWithSalt(password, salt)
}

// HashWithSalt creates an Argon2id digest from a password and an explicit salt.
// Deterministic given identical (password, salt, parameters).
func (h *Argon2Hasher) HashWithSalt(password string, salt []byte) (string, error) {
	if len(salt) == 0 {
		return "", fmt.Errorf("%w: salt must not be empty", ErrInvalidSalt)
	}

	key := argon2.IDKey(
		[]byte(password),
		salt,
		h.config.Iterations,
		h.config.Memory,
		h.config.Parallelism,
		h.config.KeyLength,
	)

	d := &Digest{
		Scheme:  IDArgon2id,
		Version: argon2.Version,
		Params: []Param{
			{Name: "m", Value: strconv.FormatUint(uint64(h.config.Memory), 10)},
			{Name: "t", Value: strconv.FormatUint(uint64(h.config.Iterations), 10)},
			{Name: "p", Value: strconv.FormatUint(uint64(h.config.Parallelism), 10)},
		},
		Salt: salt,
		Key:  key,
	}
	return d.String(), nil
}

// Verify checks if a password matches an Argon2id digest.
func (h *Argon2Hasher) Verify(password, digest string) (bool, error) {
	config, d, err := decodeArgon2Digest(digest)
	if err != nil {
		return false, err
	}

	otherKey := argon2.IDKey(
		[]byte(password),
		d.Salt,
		config.Iterations,
		config.Memory,
		config.Parallelism,
		config.KeyLength,
	)

	// Constant-time comparison to prevent timing attacks
	return crypto.ConstantTimeCompareBytes(d.Key, otherKey), nil
}

// NeedsRehash checks if a digest was created with different parameters.
func (h *Argon2Hasher) NeedsRehash(digest string) bool {
	config, _, err := decodeArgon2Digest(digest)
	if err != nil {
		return true
	}

	return config.Memory != h.config.Memory ||
		config.Iterations != h.config.Iterations ||
		config.Parallelism != h.config.Parallelism ||
		config.KeyLength != h.config.KeyLength
}

// decodeArgon2Digest parses an Argon2id digest in PHC string format.
func decodeArgon2Digest(digest string) (*Argon2Config, *Digest, error) {
	d, err := ParseDigest(digest)
	if err != nil {
		return nil, nil, err
	}
	if d.Scheme != IDArgon2id {
		return nil, nil, fmt.Errorf("%w: expected %s digest, got %q", ErrUnknownScheme, IDArgon2id, d.Scheme)
	}
	if d.Version != argon2.Version {
		return nil, nil, fmt.Errorf("%w: incompatible argon2 version %d", ErrMalformedDigest, d.Version)
	}

	config := &Argon2Config{}
	m, err := digestParamUint(d, "m", 32)
	if err != nil {
		return nil, nil, err
	}
	t, err := digestParamUint(d, "t", 32)
	if err != nil {
		return nil, nil, err
	}
	p, err := digestParamUint(d, "p", 8)
	if err != nil {
		return nil, nil, err
	}
	config.Memory = uint32(m)
	config.Iterations = uint32(t)
	config.Parallelism = uint8(p)
	config.SaltLength = uint32(len(d.Salt))
	config.KeyLength = uint32(len(d.Key))

	return config, d, nil
}

// digestParamUint reads a required unsigned integer cost parameter.
func digestParamUint(d *Digest, name string, bits int) (uint64, error) {
	raw, ok := d.Param(name)
	if !ok {
		return 0, fmt.Errorf("%w: missing %q parameter", ErrMalformedDigest, name)
	}
	v, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %q parameter %q", ErrMalformedDigest, name, raw)
	}
	return v, nil
}

// Ensure Argon2Hasher implements SaltedHasher.
var _ SaltedHasher = (*Argon2Hasher)(nil)
