package totp

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/otpclock/pkg/clock"
	"github.com/dmitrymomot/otpclock/pkg/logger"
)

// Generator produces TOTP codes for a single secret. It holds no mutable state
// and is safe for concurrent use.
type Generator struct {
	secret Secret
	cfg    Config
	clock  clock.Clock
	log    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithConfig replaces DefaultConfig. The config is validated by New.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

// WithClock sets the time source. Nil clocks are ignored.
func WithClock(c clock.Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithLogger enables debug logging of computed steps. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a Generator for secret. Configuration errors are reported here
// so they never reach code computation.
func New(secret Secret, opts ...Option) (*Generator, error) {
	g := &Generator{
		secret: secret,
		cfg:    DefaultConfig(),
		clock:  clock.System(),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Config returns the configuration in use.
func (g *Generator) Config() Config {
	return g.cfg
}

// Snapshot is the state of the current window observed at a single instant.
type Snapshot struct {
	Code      Code
	Step      TimeStep
	Remaining uint64
	Width     uint8
}

// Formatted returns the code zero-padded to the configured width.
func (s Snapshot) Formatted() string {
	return s.Code.Format(s.Width)
}

// CurrentCode returns the code for the window containing the current time.
func (g *Generator) CurrentCode() (Code, error) {
	snap, err := g.Snapshot()
	if err != nil {
		return 0, err
	}
	return snap.Code, nil
}

// SecondsRemaining returns the seconds until the next code rotation, in [1, StepSize].
func (g *Generator) SecondsRemaining() (uint64, error) {
	now, err := g.now()
	if err != nil {
		return 0, errors.Join(ErrFailedToGenerateCode, err)
	}
	remaining, err := Remainder(now, g.cfg.StartTime, g.cfg.StepSize)
	if err != nil {
		return 0, errors.Join(ErrFailedToGenerateCode, err)
	}
	return remaining, nil
}

// Snapshot reads the clock once and returns the code together with its step
// and the seconds left in the window, so the two never straddle a rotation.
func (g *Generator) Snapshot() (Snapshot, error) {
	now, err := g.now()
	if err != nil {
		return Snapshot{}, errors.Join(ErrFailedToGenerateCode, err)
	}

	elapsed, err := elapsedSince(now, g.cfg.StartTime, g.cfg.StepSize)
	if err != nil {
		return Snapshot{}, errors.Join(ErrFailedToGenerateCode, err)
	}
	step := elapsed / g.cfg.StepSize
	remaining := g.cfg.StepSize - elapsed%g.cfg.StepSize

	code, err := GenerateHOTP(g.secret, step, g.cfg.CodeWidth)
	if err != nil {
		return Snapshot{}, errors.Join(ErrFailedToGenerateCode, err)
	}

	g.log.Debug("totp code computed",
		logger.Step(step),
		logger.Remaining(remaining),
		logger.CodeWidth(g.cfg.CodeWidth),
	)

	return Snapshot{
		Code:      code,
		Step:      step,
		Remaining: remaining,
		Width:     g.cfg.CodeWidth,
	}, nil
}

func (g *Generator) now() (EpochTime, error) {
	return EpochSeconds(g.clock.Now())
}

// CurrentCode computes the code for secret at the system time. It uses
// DefaultConfig unless a config is given; only the first one is used.
func CurrentCode(secret Secret, cfg ...Config) (Code, error) {
	g, err := New(secret, configOption(cfg))
	if err != nil {
		return 0, err
	}
	return g.CurrentCode()
}

// SecondsRemaining reports the seconds until the next rotation at the system
// time. It uses DefaultConfig unless a config is given.
func SecondsRemaining(cfg ...Config) (uint64, error) {
	g, err := New(Secret{}, configOption(cfg))
	if err != nil {
		return 0, err
	}
	return g.SecondsRemaining()
}

func configOption(cfg []Config) Option {
	if len(cfg) == 0 {
		return WithConfig(DefaultConfig())
	}
	return WithConfig(cfg[0])
}
