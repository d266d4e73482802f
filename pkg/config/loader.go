package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Validator is implemented by config structs that check their own values
// after parsing.
type Validator interface {
	Validate() error
}

// Option tweaks how environment variables are parsed.
type Option func(*env.Options)

// WithPrefix prepends prefix to every env tag, e.g. "WORK_" turns
// TOTP_STEP_SIZE into WORK_TOTP_STEP_SIZE.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// WithEnvironment parses from the given map instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) {
		o.Environment = vars
	}
}

// LoadEnv loads one or more .env files into the process environment.
// Variables already set in the environment take precedence over file values.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v based on its `env` field tags.
// The default .env file in the working directory is loaded on first use if it
// exists. When v implements Validator, Validate is called on the result.
//
// Example:
//
//	type Settings struct {
//		StepSize uint64 `env:"TOTP_STEP_SIZE" envDefault:"30"`
//		Secret   string `env:"TOTP_SECRET,required"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if val, ok := any(&parsed).(Validator); ok {
		if err := val.Validate(); err != nil {
			return errors.Join(ErrValidation, err)
		}
	}

	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
