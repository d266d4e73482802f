package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Step records a TOTP time-step counter under the key "step".
func Step(step uint64) slog.Attr {
	return slog.Uint64("step", step)
}

// Remaining records the seconds left in the current window under the key "remaining".
func Remaining(seconds uint64) slog.Attr {
	return slog.Uint64("remaining", seconds)
}

func CodeWidth(width uint8) slog.Attr {
	return slog.Int("code_width", int(width))
}

// StepSize records the window length in seconds under the key "step_size".
func StepSize(seconds uint64) slog.Attr {
	return slog.Uint64("step_size", seconds)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
