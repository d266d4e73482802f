// Package display renders TOTP snapshots as a single terminal status line:
// the zero-padded code, a countdown bar colored by the share of the window
// left, and the remaining seconds.
//
//	r := display.NewRenderer(os.Stdout, display.WithInPlace(true))
//	defer r.Finish()
//	_ = r.Render(snap, cfg.StepSize)
package display
