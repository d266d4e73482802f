package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/dmitrymomot/otpclock/pkg/clock"
	"github.com/dmitrymomot/otpclock/pkg/config"
	"github.com/dmitrymomot/otpclock/pkg/display"
	"github.com/dmitrymomot/otpclock/pkg/logger"
	"github.com/dmitrymomot/otpclock/pkg/totp"
)

var errMissingSecret = errors.New("missing secret: pass it as the first argument or set TOTP_SECRET")

type settings struct {
	Secret   string `env:"TOTP_SECRET"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	NoColor  bool   `env:"OTPCLOCK_NO_COLOR"`
	BarWidth int    `env:"OTPCLOCK_BAR_WIDTH" envDefault:"30"`
}

func main() {
	var s settings
	if err := config.Load(&s); err != nil {
		fmt.Fprintf(os.Stderr, "otpclock: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(s, os.Stderr)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := options{
		settings: s,
		args:     os.Args[1:],
		out:      os.Stdout,
		clock:    clock.System(),
		interval: time.Second,
		tty:      term.IsTerminal(int(os.Stdout.Fd())),
		log:      log,
	}
	if err := run(ctx, opts); err != nil {
		log.Error("otpclock stopped", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

type options struct {
	settings settings
	args     []string
	out      io.Writer
	clock    clock.Clock
	interval time.Duration
	tty      bool
	log      *slog.Logger
}

// run renders the current code every interval until ctx is done. Any error from
// the core ends the loop; a wrong code is never shown.
func run(ctx context.Context, o options) error {
	text := o.settings.Secret
	if len(o.args) > 0 {
		text = o.args[0]
	}
	if strings.TrimSpace(text) == "" {
		return errMissingSecret
	}

	secret, err := totp.DecodeSecret(normalizeSecret(text))
	if err != nil {
		return err
	}

	cfg, err := totp.LoadConfig()
	if err != nil {
		return err
	}

	gen, err := totp.New(secret,
		totp.WithConfig(cfg),
		totp.WithClock(o.clock),
		totp.WithLogger(o.log.With(logger.Component("totp"))),
	)
	if err != nil {
		return err
	}

	r := display.NewRenderer(o.out,
		display.WithBarWidth(o.settings.BarWidth),
		display.WithInPlace(o.tty),
		display.WithColor(o.tty && !o.settings.NoColor),
	)
	defer func() {
		if err := r.Finish(); err != nil {
			o.log.Warn("failed to finish display", logger.Error(err))
		}
	}()

	o.log.Info("starting",
		logger.StepSize(cfg.StepSize),
		logger.CodeWidth(cfg.CodeWidth),
	)

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		snap, err := gen.Snapshot()
		if err != nil {
			return err
		}
		if err := r.Render(snap, cfg.StepSize); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// normalizeSecret accepts secrets the way authenticator apps print them:
// lowercase, grouped with spaces or dashes, padding omitted.
func normalizeSecret(text string) string {
	s := strings.ToUpper(strings.NewReplacer(" ", "", "-", "", "\t", "").Replace(strings.TrimSpace(text)))
	if n := len(s) % 8; n != 0 {
		s += strings.Repeat("=", 8-n)
	}
	return s
}

func newLogger(s settings, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(s.AppEnv, "otpclock"),
		logger.WithOutput(out),
	}
	level, err := logger.ParseLevel(s.LogLevel)
	if err == nil {
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)
	if err != nil {
		log.Warn("ignoring LOG_LEVEL", logger.Error(err))
	}
	return log
}
