package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrymomot/otpclock/pkg/totp"
)

const DefaultBarWidth = 30

// Renderer writes one status line per tick: the zero-padded code, a countdown
// bar and the seconds left.
type Renderer struct {
	out      io.Writer
	barWidth int
	inPlace  bool
	wrote    bool
	high     *color.Color
	mid      *color.Color
	low      *color.Color
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBarWidth sets the number of cells in the countdown bar. Values below 1 are ignored.
func WithBarWidth(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.barWidth = n
		}
	}
}

// WithColor forces colored output on or off regardless of the terminal.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		for _, c := range []*color.Color{r.high, r.mid, r.low} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithInPlace makes each line overwrite the previous one instead of appending.
func WithInPlace(enabled bool) Option {
	return func(r *Renderer) {
		r.inPlace = enabled
	}
}

// NewRenderer creates a Renderer writing to out. Colors follow fatih/color's
// terminal detection unless WithColor is given.
func NewRenderer(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:      out,
		barWidth: DefaultBarWidth,
		high:     color.New(color.FgGreen),
		mid:      color.New(color.FgYellow),
		low:      color.New(color.FgRed, color.Bold),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Line formats snap for a window of stepSize seconds.
func (r *Renderer) Line(snap totp.Snapshot, stepSize uint64) string {
	bar := Bar(snap.Remaining, stepSize, r.barWidth)
	return fmt.Sprintf("%s [%s] %2ds",
		snap.Formatted(),
		r.colorFor(snap.Remaining, stepSize).Sprint(bar),
		snap.Remaining,
	)
}

// Render writes the line for snap.
func (r *Renderer) Render(snap totp.Snapshot, stepSize uint64) error {
	line := r.Line(snap, stepSize)
	var err error
	if r.inPlace {
		// carriage return, then clear to end of line
		_, err = fmt.Fprintf(r.out, "\r%s\x1b[K", line)
	} else {
		_, err = fmt.Fprintln(r.out, line)
	}
	if err == nil {
		r.wrote = true
	}
	return err
}

// Finish terminates an in-place line so the shell prompt starts on a fresh line.
func (r *Renderer) Finish() error {
	if !r.inPlace || !r.wrote {
		return nil
	}
	_, err := fmt.Fprintln(r.out)
	return err
}

func (r *Renderer) colorFor(remaining, total uint64) *color.Color {
	switch {
	case total == 0 || remaining*2 > total:
		return r.high
	case remaining*5 > total:
		return r.mid
	default:
		return r.low
	}
}

// Bar draws remaining/total as width cells of '#' followed by '.'.
func Bar(remaining, total uint64, width int) string {
	if width < 1 {
		return ""
	}
	if total == 0 {
		return strings.Repeat(".", width)
	}
	if remaining > total {
		remaining = total
	}
	filled := int(remaining * uint64(width) / total)
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}
