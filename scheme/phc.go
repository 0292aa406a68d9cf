package scheme

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Param is a single name=value cost parameter inside a PHC digest.
// Order is significant and preserved.
type Param struct {
	Name  string
	Value string
}

// Digest is the parsed form of a PHC-formatted digest string:
//
//	$<scheme>[$v=<version>]$<params>$<salt>$<hash>
//
// Salt and Key are raw bytes; String renders them with unpadded
// standard base64, matching the PHC specification.
type Digest struct {
	// Scheme is the algorithm tag, e.g. "argon2id".
	Scheme string

	// Version is the scheme version, or 0 when the scheme omits the field.
	Version int

	// Params holds the cost parameters in encoding order.
	Params []Param

	// Salt is the raw salt.
	Salt []byte

	// Key is the raw derived key.
	Key []byte
}

// String renders the digest to its textual form. Rendering is
// deterministic: parsing the result yields an equal Digest, and
// re-rendering it yields the identical string.
func (d *Digest) String() string {
	var b strings.Builder
	b.WriteByte('$')
	b.WriteString(d.Scheme)
	if d.Version > 0 {
		fmt.Fprintf(&b, "$v=%d", d.Version)
	}
	b.WriteByte('$')
	for i, p := range d.Params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	b.WriteByte('$')
	b.WriteString(base64.RawStdEncoding.EncodeToString(d.Salt))
	b.WriteByte('$')
	b.WriteString(base64.RawStdEncoding.EncodeToString(d.Key))
	return b.String()
}

// Param returns the value of the named cost parameter.
func (d *Digest) Param(name string) (string, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// ParseDigest parses a PHC-formatted digest string. It fails with
// ErrMalformedDigest when the layout is wrong and ErrUnknownScheme when
// the tag is not a registered PHC scheme. bcrypt digests are not PHC;
// use DetectScheme to route them.
func ParseDigest(s string) (*Digest, error) {
	if !strings.HasPrefix(s, "$") {
		return nil, fmt.Errorf("%w: missing leading separator", ErrMalformedDigest)
	}
	parts := strings.Split(s[1:], "$")

	d := &Digest{}
	switch {
	case len(parts) == 5 && strings.HasPrefix(parts[1], "v="):
		if _, err := fmt.Sscanf(parts[1], "v=%d", &d.Version); err != nil {
			return nil, fmt.Errorf("%w: bad version field %q", ErrMalformedDigest, parts[1])
		}
		if d.Version <= 0 {
			return nil, fmt.Errorf("%w: bad version field %q", ErrMalformedDigest, parts[1])
		}
		parts = append(parts[:1], parts[2:]...)
	case len(parts) == 4:
		// no version field
	default:
		return nil, fmt.Errorf("%w: expected 4 or 5 sections, got %d", ErrMalformedDigest, len(parts))
	}

	d.Scheme = parts[0]
	switch d.Scheme {
	case IDArgon2id, IDScrypt, IDPBKDF2:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, d.Scheme)
	}

	params, err := parseParams(parts[1])
	if err != nil {
		return nil, err
	}
	d.Params = params

	d.Salt, err = base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: salt is not valid base64", ErrMalformedDigest)
	}
	d.Key, err = base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: hash is not valid base64", ErrMalformedDigest)
	}
	if len(d.Salt) == 0 || len(d.Key) == 0 {
		return nil, fmt.Errorf("%w: empty salt or hash", ErrMalformedDigest)
	}
	return d, nil
}

func parseParams(s string) ([]Param, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty parameter section", ErrMalformedDigest)
	}
	fields := strings.Split(s, ",")
	params := make([]Param, 0, len(fields))
	for _, f := range fields {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("%w: bad parameter %q", ErrMalformedDigest, f)
		}
		params = append(params, Param{Name: name, Value: value})
	}
	return params, nil
}

// DetectScheme returns the scheme identifier a digest string was produced
// by. bcrypt is recognized by its modular-crypt prefix; everything else
// must parse as a PHC digest.
func DetectScheme(digest string) (string, error) {
	if strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$") {
		return IDBcrypt, nil
	}
	d, err := ParseDigest(digest)
	if err != nil {
		return "", err
	}
	return d.Scheme, nil
}
