package totp

import (
	"encoding/base32"
	"errors"
	"log/slog"
	"strings"
)

// Secret is the decoded shared key used to compute one-time codes.
// The zero value is an empty key.
type Secret struct {
	key []byte
}

// NewSecret wraps raw key bytes. The input is copied so later changes to it
// do not affect the secret.
func NewSecret(key []byte) Secret {
	return Secret{key: append([]byte(nil), key...)}
}

// DecodeSecret decodes an RFC 4648 base32 string (standard alphabet, "=" padding)
// into a Secret. Invalid characters, bad padding or a malformed length produce an
// error wrapping ErrDecodeSecret and an empty Secret.
func DecodeSecret(text string) (Secret, error) {
	// encoding/base32 skips CR and LF; they are not part of the alphabet
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		return Secret{}, errors.Join(ErrDecodeSecret, base32.CorruptInputError(i))
	}
	key, err := base32.StdEncoding.DecodeString(text)
	if err != nil {
		return Secret{}, errors.Join(ErrDecodeSecret, err)
	}
	return Secret{key: key}, nil
}

// MustDecodeSecret works like DecodeSecret but panics on invalid input.
// Intended for package-level fixtures and tests.
func MustDecodeSecret(text string) Secret {
	s, err := DecodeSecret(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Bytes returns a copy of the raw key.
func (s Secret) Bytes() []byte {
	out := make([]byte, len(s.key))
	copy(out, s.key)
	return out
}

// Len returns the key length in bytes.
func (s Secret) Len() int {
	return len(s.key)
}

// String keeps the key out of fmt and log output.
func (s Secret) String() string {
	return "[REDACTED]"
}

func (s Secret) GoString() string {
	return "totp.Secret{[REDACTED]}"
}

func (s Secret) LogValue() slog.Value {
	return slog.StringValue("[REDACTED]")
}
