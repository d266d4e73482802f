package totp_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otpclock/pkg/totp"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := totp.DefaultConfig()
	assert.Equal(t, totp.EpochTime(0), cfg.StartTime)
	assert.Equal(t, uint64(30), cfg.StepSize)
	assert.Equal(t, uint8(6), cfg.CodeWidth)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		start     totp.EpochTime
		stepSize  uint64
		codeWidth uint8
		wantErr   error
	}{
		{name: "defaults", start: 0, stepSize: 30, codeWidth: 6},
		{name: "eight digits", start: 0, stepSize: 30, codeWidth: 8},
		{name: "min width", start: 10, stepSize: 1, codeWidth: 1},
		{name: "max width", start: 0, stepSize: 60, codeWidth: 9},
		{name: "zero step size", start: 0, stepSize: 0, codeWidth: 6, wantErr: totp.ErrInvalidStepSize},
		{name: "zero code width", start: 0, stepSize: 30, codeWidth: 0, wantErr: totp.ErrInvalidCodeWidth},
		{name: "ten digits", start: 0, stepSize: 30, codeWidth: 10, wantErr: totp.ErrInvalidCodeWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := totp.NewConfig(tt.start, tt.stepSize, tt.codeWidth)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, totp.ErrInvalidConfig)
				assert.Equal(t, totp.Config{}, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, totp.Config{StartTime: tt.start, StepSize: tt.stepSize, CodeWidth: tt.codeWidth}, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("TOTP_START_TIME")
		os.Unsetenv("TOTP_STEP_SIZE")
		os.Unsetenv("TOTP_CODE_WIDTH")

		cfg, err := totp.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, totp.DefaultConfig(), cfg)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("TOTP_START_TIME", "1000")
		t.Setenv("TOTP_STEP_SIZE", "60")
		t.Setenv("TOTP_CODE_WIDTH", "8")

		cfg, err := totp.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, totp.Config{StartTime: 1000, StepSize: 60, CodeWidth: 8}, cfg)
	})

	t.Run("zero step size", func(t *testing.T) {
		t.Setenv("TOTP_STEP_SIZE", "0")

		_, err := totp.LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, totp.ErrFailedToLoadConfig)
		assert.ErrorIs(t, err, totp.ErrInvalidStepSize)
	})

	t.Run("code width out of range", func(t *testing.T) {
		t.Setenv("TOTP_CODE_WIDTH", "12")

		_, err := totp.LoadConfig()
		assert.ErrorIs(t, err, totp.ErrInvalidCodeWidth)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("TOTP_STEP_SIZE", "thirty")

		_, err := totp.LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, totp.ErrFailedToLoadConfig)
	})
}
