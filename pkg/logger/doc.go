// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so keys stay consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "otpclock"),
//	    logger.WithOutput(os.Stderr),
//	)
//	logger.SetAsDefault(log)
//
//	log.Debug("totp code computed", logger.Step(step), logger.Remaining(left))
//
// # Configuration
//
//   • WithEnvironment – text/debug for development, JSON/info for staging and production.
//   • WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   • WithLevel – set a custom slog.Level; ParseLevel turns "debug", "warn" etc. into one.
//   • WithAttr – attach static attributes.
//
// Loggers write to stderr by default so that program output on stdout stays
// untouched.
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors:
//
//	log.Error("tick failed", logger.Error(err))
package logger
