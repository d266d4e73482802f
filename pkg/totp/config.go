package totp

import (
	"errors"

	"github.com/dmitrymomot/otpclock/pkg/config"
)

const (
	DefaultStartTime EpochTime = 0  // Unix epoch, RFC 6238 T0
	DefaultStepSize  uint64    = 30 // RFC 6238 recommended time step
	DefaultCodeWidth uint8     = 6
)

// Config groups the tunable TOTP parameters.
// The zero value is not valid; start from DefaultConfig.
type Config struct {
	StartTime EpochTime `env:"TOTP_START_TIME" envDefault:"0"`
	StepSize  uint64    `env:"TOTP_STEP_SIZE" envDefault:"30"`
	CodeWidth uint8     `env:"TOTP_CODE_WIDTH" envDefault:"6"`
}

// DefaultConfig returns the RFC 6238 defaults: T0 = 0, 30 second steps, 6 digits.
func DefaultConfig() Config {
	return Config{
		StartTime: DefaultStartTime,
		StepSize:  DefaultStepSize,
		CodeWidth: DefaultCodeWidth,
	}
}

// NewConfig builds and validates a Config.
func NewConfig(startTime EpochTime, stepSize uint64, codeWidth uint8) (Config, error) {
	cfg := Config{
		StartTime: startTime,
		StepSize:  stepSize,
		CodeWidth: codeWidth,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports ErrInvalidStepSize or ErrInvalidCodeWidth for unusable values.
func (c Config) Validate() error {
	if c.StepSize == 0 {
		return ErrInvalidStepSize
	}
	return validateCodeWidth(c.CodeWidth)
}

// LoadConfig reads Config from TOTP_START_TIME, TOTP_STEP_SIZE and
// TOTP_CODE_WIDTH, honouring a .env file, and validates the result.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, errors.Join(ErrFailedToLoadConfig, err)
	}
	return cfg, nil
}
