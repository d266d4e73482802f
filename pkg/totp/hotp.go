package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	MinCodeWidth = 1
	MaxCodeWidth = 9 // 10^9 is the largest power of ten below 2^31
)

// TimeStep is the counter fed into HOTP.
type TimeStep = uint64

// Code is a numeric one-time password. Leading zeros are a display concern,
// use Format to render it.
type Code uint32

// Format renders the code zero-padded to width digits.
func (c Code) Format(width uint8) string {
	return fmt.Sprintf("%0*d", int(width), uint32(c))
}

var pow10 = [...]uint32{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000}

// GenerateHOTP implements the RFC 4226 HMAC-based One-Time Password algorithm
// with HMAC-SHA1. Widths outside [MinCodeWidth, MaxCodeWidth] are rejected with
// ErrInvalidCodeWidth.
func GenerateHOTP(secret Secret, counter TimeStep, width uint8) (Code, error) {
	if err := validateCodeWidth(width); err != nil {
		return 0, err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, secret.key)
	if _, err := mac.Write(msg[:]); err != nil {
		return 0, errors.Join(ErrCrypto, err)
	}
	sum := mac.Sum(nil)
	if len(sum) != sha1.Size {
		return 0, errors.Join(ErrCrypto, fmt.Errorf("unexpected digest length %d", len(sum)))
	}

	return Code(truncate(sum) % pow10[width]), nil
}

// truncate performs RFC 4226 dynamic truncation: the low nibble of the last
// byte selects a 4-byte window, whose top bit is cleared to give a 31-bit value.
// offset <= 15, so offset+3 never leaves the 20-byte digest.
func truncate(sum []byte) uint32 {
	offset := sum[len(sum)-1] & 0x0f
	return binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff
}

func validateCodeWidth(width uint8) error {
	if width < MinCodeWidth || width > MaxCodeWidth {
		return errors.Join(ErrInvalidCodeWidth, fmt.Errorf("got %d", width))
	}
	return nil
}
