// Package totp computes Time-based One-Time Passwords (RFC 6238) on top of the
// HMAC-based One-Time Password algorithm (RFC 4226).
//
// Apart from reading the injected clock, every function is a pure computation
// over its inputs and nothing is cached between calls. Codes match standard
// authenticator apps and verifiers bit for bit.
//
// # Architecture
//
//   • secret    – secret.go decodes base32 (RFC 4648, "=" padding) shared secrets into an
//     immutable Secret that never prints its key.
//
//   • hotp      – hotp.go implements GenerateHOTP: HMAC-SHA1 over the 8-byte big-endian
//     counter followed by dynamic truncation and reduction to the requested number of digits.
//
//   • step      – step.go converts epoch seconds into a time-step counter (Step) and the
//     seconds left until the next rotation (Remainder). Times before the configured start
//     are rejected instead of wrapping around.
//
//   • generator – generator.go ties a Secret, a Config and a clock.Clock together and exposes
//     CurrentCode, SecondsRemaining and Snapshot.
//
// Configuration is grouped in Config with RFC 6238 defaults (T0 = 0, 30 second steps,
// 6 digits). LoadConfig reads TOTP_START_TIME, TOTP_STEP_SIZE and TOTP_CODE_WIDTH from
// the environment.
//
// # Usage
//
//	secret, err := totp.DecodeSecret("JBSWY3DPEHPK3PXP")
//	if err != nil {
//	    return err
//	}
//
//	gen, err := totp.New(secret)
//	if err != nil {
//	    return err
//	}
//
//	snap, err := gen.Snapshot()
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s (%ds left)\n", snap.Formatted(), snap.Remaining)
//
// Tests inject a deterministic clock:
//
//	gen, _ := totp.New(secret, totp.WithClock(clock.Fixed(time.Unix(59, 0))))
//
// # Error Handling
//
// Errors are never replaced with a fallback code. Inspect them with errors.Is against
// the package sentinels:
//
//   • ErrDecodeSecret – the secret is not valid base32.
//   • ErrClock (ErrClockBeforeStart, ErrClockBeforeEpoch) – the clock reports an unusable time.
//   • ErrInvalidConfig (ErrInvalidStepSize, ErrInvalidCodeWidth) – rejected when the
//     Generator is built, before any hashing.
//   • ErrCrypto – the HMAC computation failed.
//
// # See Also
//
//   • RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   • RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
