// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once, if present.
//     LoadEnv loads additional files explicitly.
//   - Load parses the environment into any struct using `env` field tags and,
//     when the struct implements Validator, validates the result.
//   - MustLoad panics on failure for configuration required at startup.
//
// Every call parses afresh; nothing is cached, so tests may change the
// environment between loads.
//
// # Usage
//
//	type Settings struct {
//	    Secret   string `env:"TOTP_SECRET,required"`
//	    StepSize uint64 `env:"TOTP_STEP_SIZE" envDefault:"30"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into the struct.
//   - `ErrValidation`     – the struct's Validate method rejected the values.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
