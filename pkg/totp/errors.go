package totp

import "errors"

var (
	ErrDecodeSecret         = errors.New("invalid base32 secret")
	ErrClock                = errors.New("clock error")
	ErrClockBeforeStart     = errors.Join(ErrClock, errors.New("current time is before the configured start time"))
	ErrClockBeforeEpoch     = errors.Join(ErrClock, errors.New("current time is before the unix epoch"))
	ErrInvalidConfig        = errors.New("invalid TOTP configuration")
	ErrInvalidStepSize      = errors.Join(ErrInvalidConfig, errors.New("step size must be greater than 0"))
	ErrInvalidCodeWidth     = errors.Join(ErrInvalidConfig, errors.New("code width must be between 1 and 9"))
	ErrCrypto               = errors.New("failed to compute HMAC")
	ErrFailedToGenerateCode = errors.New("failed to generate TOTP code")
	ErrFailedToLoadConfig   = errors.New("failed to load TOTP configuration")
)
