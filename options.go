package passhash

import (
	"os"

	"github.com/aloks98/passhash/scheme"
)

// SchemeEnvVar is the environment variable read by WithSchemeFromEnv.
const SchemeEnvVar = "PASSHASH_SCHEME"

// Option is a function that modifies the configuration.
type Option func(*Config)

// WithScheme sets the algorithm used for new digests.
func WithScheme(s Scheme) Option {
	return func(c *Config) {
		c.Scheme = s
	}
}

// WithSchemeFromEnv sets the scheme from the PASSHASH_SCHEME environment
// variable when it is set.
func WithSchemeFromEnv() Option {
	return func(c *Config) {
		if s := os.Getenv(SchemeEnvVar); s != "" {
			c.Scheme = Scheme(s)
		}
	}
}

// WithBcryptCost sets the bcrypt cost factor.
func WithBcryptCost(cost int) Option {
	return func(c *Config) {
		c.Bcrypt = &scheme.BcryptConfig{Cost: cost}
	}
}

// WithArgon2Params sets the Argon2id cost parameters.
// Salt and key lengths keep their defaults.
func WithArgon2Params(memory, iterations uint32, parallelism uint8) Option {
	return func(c *Config) {
		cfg := scheme.DefaultArgon2Config()
		cfg.Memory = memory
		cfg.Iterations = iterations
		cfg.Parallelism = parallelism
		c.Argon2 = cfg
	}
}

// WithScryptParams sets the scrypt cost parameters.
// Salt and key lengths keep their defaults.
func WithScryptParams(n, r, p int) Option {
	return func(c *Config) {
		cfg := scheme.DefaultScryptConfig()
		cfg.N = n
		cfg.R = r
		cfg.P = p
		c.Scrypt = cfg
	}
}

// WithPBKDF2Iterations sets the PBKDF2-SHA256 iteration count.
func WithPBKDF2Iterations(iterations int) Option {
	return func(c *Config) {
		cfg := scheme.DefaultPBKDF2Config()
		cfg.Iterations = iterations
		c.PBKDF2 = cfg
	}
}

// WithSaltSource sets the random source used for salt generation.
// The default is the system entropy source; override it only for
// deterministic tests.
func WithSaltSource(source scheme.SaltSource) Option {
	return func(c *Config) {
		c.Source = source
	}
}
