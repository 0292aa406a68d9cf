package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vharitonsky/iniflags"

	"github.com/aloks98/passhash"
)

// PasswordEnvVar is read when -password is not set.
const PasswordEnvVar = "PASSHASH_PASSWORD"

//nolint:govet
type config struct {
	logFormat string
	logLevel  string

	password      string
	passwordStdin bool

	schemeName string

	bcryptCost int

	argon2Memory      uint
	argon2Iterations  uint
	argon2Parallelism uint

	scryptN int
	scryptR int
	scryptP int

	pbkdf2Iterations int
}

func registerFlags(f *flag.FlagSet, cfg *config) {
	f.StringVar(&cfg.logFormat, "log_format", "logfmt", "Log format - json or logfmt")
	f.StringVar(&cfg.logLevel, "log_level", "info", "Minimum log level to output")
	f.StringVar(&cfg.password, "password", "", "Password to hash (set $PASSHASH_PASSWORD to use env var instead)")
	f.BoolVar(&cfg.passwordStdin, "password_stdin", false, "Read the password from the first line of stdin")
	f.StringVar(&cfg.schemeName, "scheme", "bcrypt", "Hashing scheme (bcrypt, argon2id, scrypt, pbkdf2-sha256)")
	f.IntVar(&cfg.bcryptCost, "bcrypt_cost", 12, "bcrypt cost factor (4-31)")
	f.UintVar(&cfg.argon2Memory, "argon2_memory", 64*1024, "Argon2id memory in KiB")
	f.UintVar(&cfg.argon2Iterations, "argon2_iterations", 3, "Argon2id iteration count")
	f.UintVar(&cfg.argon2Parallelism, "argon2_parallelism", 2, "Argon2id parallelism")
	f.IntVar(&cfg.scryptN, "scrypt_n", 1<<15, "scrypt CPU/memory cost (power of two)")
	f.IntVar(&cfg.scryptR, "scrypt_r", 8, "scrypt block size")
	f.IntVar(&cfg.scryptP, "scrypt_p", 1, "scrypt parallelization")
	f.IntVar(&cfg.pbkdf2Iterations, "pbkdf2_iterations", 600000, "PBKDF2-SHA256 iteration count")
}

func loadConfig() (*config, error) {
	cfg := config{}
	registerFlags(flag.CommandLine, &cfg)

	iniflags.Parse()

	setupLogger(cfg.logFormat, cfg.logLevel)

	return &cfg, nil
}

// resolvePassword returns the plaintext to hash: the -password flag, the
// PASSHASH_PASSWORD env var, or the first line of stdin, in that order.
func resolvePassword(cfg *config, stdin io.Reader) (string, error) {
	if cfg.password != "" {
		return cfg.password, nil
	}

	if pw := os.Getenv(PasswordEnvVar); pw != "" {
		slog.Debug("password not set, using " + PasswordEnvVar + " env var")
		return pw, nil
	}

	if cfg.passwordStdin {
		r := bufio.NewReader(stdin)
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return "", errors.New("stdin provided an empty password")
		}
		return line, nil
	}

	return "", errors.New("no password provided: use -password, $" + PasswordEnvVar + ", or -password_stdin")
}

// buildOptions translates CLI flags into passhash options.
func buildOptions(cfg *config) []passhash.Option {
	return []passhash.Option{
		passhash.WithScheme(passhash.Scheme(cfg.schemeName)),
		passhash.WithBcryptCost(cfg.bcryptCost),
		passhash.WithArgon2Params(uint32(cfg.argon2Memory), uint32(cfg.argon2Iterations), uint8(cfg.argon2Parallelism)),
		passhash.WithScryptParams(cfg.scryptN, cfg.scryptR, cfg.scryptP),
		passhash.WithPBKDF2Iterations(cfg.pbkdf2Iterations),
	}
}
