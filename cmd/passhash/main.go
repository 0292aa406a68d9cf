// Command passhash hashes one secret and prints the digest to stdout.
//
// The digest is self-describing (algorithm tag, cost parameters, and salt
// are embedded), so it can later be verified without any other state.
// Diagnostics go to stderr; the digest is the only thing written to stdout.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aloks98/passhash"
)

func main() {
	if err := run(os.Stdout); err != nil {
		slog.Error("hashing failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(stdout io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig: %w", err)
	}

	password, err := resolvePassword(cfg, os.Stdin)
	if err != nil {
		return err
	}

	hasher, err := passhash.New(buildOptions(cfg)...)
	if err != nil {
		return fmt.Errorf("configure hasher: %w", err)
	}

	digest, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	slog.Debug("digest generated", slog.String("scheme", string(hasher.Scheme())))

	fmt.Fprintln(stdout, digest)

	return nil
}
