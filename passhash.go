// Package passhash derives irreversible, salted digests from plaintext
// secrets and verifies plaintexts against previously produced digests.
//
// Digests are self-describing: the algorithm tag, cost parameters, and salt
// are embedded in the digest string, so verification needs no out-of-band
// state. New digests use the configured scheme; verification accepts digests
// from any supported scheme, detected by tag.
//
// Basic usage:
//
//	hasher, err := passhash.New(
//	    passhash.WithScheme(passhash.SchemeArgon2id),
//	)
//	digest, err := hasher.Hash("correct horse battery staple")
//	ok, err := hasher.Verify("correct horse battery staple", digest)
package passhash

import (
	"fmt"

	"github.com/aloks98/passhash/scheme"
)

// Service is the main entry point for passhash functionality.
// It is immutable after New and safe for concurrent use.
type Service struct {
	config  *Config
	hasher  scheme.Hasher
	hashers map[string]scheme.Hasher
}

// New creates a new Service with the given options.
func New(opts ...Option) (*Service, error) {
	// Start with default config
	cfg := NewConfig()

	// Apply all options to config
	for _, opt := range opts {
		opt(cfg)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hashers := buildHashers(cfg)

	return &Service{
		config:  cfg,
		hasher:  hashers[string(cfg.Scheme)],
		hashers: hashers,
	}, nil
}

// buildHashers constructs one hasher per supported scheme so Verify can
// handle digests produced under any of them.
func buildHashers(cfg *Config) map[string]scheme.Hasher {
	argon2Cfg := cfg.Argon2
	if argon2Cfg == nil {
		argon2Cfg = scheme.DefaultArgon2Config()
	}
	scryptCfg := cfg.Scrypt
	if scryptCfg == nil {
		scryptCfg = scheme.DefaultScryptConfig()
	}
	pbkdf2Cfg := cfg.PBKDF2
	if pbkdf2Cfg == nil {
		pbkdf2Cfg = scheme.DefaultPBKDF2Config()
	}
	if cfg.Source != nil {
		argon2Cfg.Source = cfg.Source
		scryptCfg.Source = cfg.Source
		pbkdf2Cfg.Source = cfg.Source
	}

	return map[string]scheme.Hasher{
		scheme.IDBcrypt:   scheme.NewBcryptHasher(cfg.Bcrypt),
		scheme.IDArgon2id: scheme.NewArgon2Hasher(argon2Cfg),
		scheme.IDScrypt:   scheme.NewScryptHasher(scryptCfg),
		scheme.IDPBKDF2:   scheme.NewPBKDF2Hasher(pbkdf2Cfg),
	}
}

// Config returns a copy of the service configuration.
func (s *Service) Config() Config {
	return *s.config
}

// Scheme returns the scheme used for new digests.
func (s *Service) Scheme() Scheme {
	return s.config.Scheme
}

// Hash creates a digest from a password using the configured scheme and a
// fresh random salt. Hashing the same password twice yields different
// digests.
func (s *Service) Hash(password string) (string, error) {
	return s.hasher.Hash(password)
}

// Verify checks if a password matches a digest. The digest's scheme is
// detected from its tag, so digests produced under a previously configured
// scheme still verify.
func (s *Service) Verify(password, digest string) (bool, error) {
	h, err := s.hasherFor(digest)
	if err != nil {
		return false, err
	}
	return h.Verify(password, digest)
}

// NeedsRehash checks if a digest should be regenerated: true when the
// digest's scheme differs from the configured one, when its parameters
// differ from the configured parameters, or when it cannot be parsed.
func (s *Service) NeedsRehash(digest string) bool {
	h, err := s.hasherFor(digest)
	if err != nil {
		return true
	}
	if h.ID() != string(s.config.Scheme) {
		return true
	}
	return h.NeedsRehash(digest)
}

// hasherFor returns the hasher matching a digest's scheme tag.
func (s *Service) hasherFor(digest string) (scheme.Hasher, error) {
	id, err := scheme.DetectScheme(digest)
	if err != nil {
		return nil, err
	}
	h, ok := s.hashers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, id)
	}
	return h, nil
}
