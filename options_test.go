package passhash

import (
	"testing"

	"github.com/aloks98/passhash/scheme"
)

func TestWithScheme(t *testing.T) {
	cfg := NewConfig()
	WithScheme(SchemeArgon2id)(cfg)

	if cfg.Scheme != SchemeArgon2id {
		t.Errorf("Scheme = %v, want %v", cfg.Scheme, SchemeArgon2id)
	}
}

func TestWithSchemeFromEnv(t *testing.T) {
	t.Setenv(SchemeEnvVar, "scrypt")

	cfg := NewConfig()
	WithSchemeFromEnv()(cfg)

	if cfg.Scheme != SchemeScrypt {
		t.Errorf("Scheme = %v, want %v", cfg.Scheme, SchemeScrypt)
	}
}

func TestWithSchemeFromEnv_Unset(t *testing.T) {
	t.Setenv(SchemeEnvVar, "")

	cfg := NewConfig()
	WithSchemeFromEnv()(cfg)

	if cfg.Scheme != DefaultScheme {
		t.Errorf("Scheme = %v, want default %v", cfg.Scheme, DefaultScheme)
	}
}

func TestWithBcryptCost(t *testing.T) {
	cfg := NewConfig()
	WithBcryptCost(10)(cfg)

	if cfg.Bcrypt == nil || cfg.Bcrypt.Cost != 10 {
		t.Error("bcrypt cost should be 10")
	}
}

func TestWithArgon2Params(t *testing.T) {
	cfg := NewConfig()
	WithArgon2Params(32*1024, 2, 4)(cfg)

	if cfg.Argon2 == nil {
		t.Fatal("argon2 config should be set")
	}
	if cfg.Argon2.Memory != 32*1024 {
		t.Errorf("Memory = %d, want %d", cfg.Argon2.Memory, 32*1024)
	}
	if cfg.Argon2.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", cfg.Argon2.Iterations)
	}
	if cfg.Argon2.Parallelism != 4 {
		t.Errorf("Parallelism = %d, want 4", cfg.Argon2.Parallelism)
	}
	// Lengths keep their defaults
	if cfg.Argon2.SaltLength != 16 || cfg.Argon2.KeyLength != 32 {
		t.Error("salt and key lengths should keep defaults")
	}
}

func TestWithScryptParams(t *testing.T) {
	cfg := NewConfig()
	WithScryptParams(1<<14, 8, 2)(cfg)

	if cfg.Scrypt == nil {
		t.Fatal("scrypt config should be set")
	}
	if cfg.Scrypt.N != 1<<14 || cfg.Scrypt.R != 8 || cfg.Scrypt.P != 2 {
		t.Errorf("scrypt params = %d/%d/%d, want %d/8/2", cfg.Scrypt.N, cfg.Scrypt.R, cfg.Scrypt.P, 1<<14)
	}
}

func TestWithPBKDF2Iterations(t *testing.T) {
	cfg := NewConfig()
	WithPBKDF2Iterations(310000)(cfg)

	if cfg.PBKDF2 == nil || cfg.PBKDF2.Iterations != 310000 {
		t.Error("pbkdf2 iterations should be 310000")
	}
}

func TestWithSaltSource(t *testing.T) {
	src := scheme.FixedSaltSource([]byte("0123456789abcdef"))

	cfg := NewConfig()
	WithSaltSource(src)(cfg)

	if cfg.Source == nil {
		t.Error("salt source should be set")
	}
}
