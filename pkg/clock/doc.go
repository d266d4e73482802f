// Package clock abstracts the wall clock so code that depends on the current
// time can be tested with fixed or scripted instants instead of real delays.
//
// Production code depends on the Clock interface and receives System():
//
//	gen, err := totp.New(secret, totp.WithClock(clock.System()))
//
// Tests substitute a deterministic implementation:
//
//	clk := clock.Fixed(time.Unix(59, 0))
//	seq := clock.Sequence(time.Unix(0, 0), time.Unix(29, 0), time.Unix(30, 0))
//
// Every implementation is safe for concurrent use.
package clock
