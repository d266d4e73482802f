package clock

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Func adapts an ordinary function to the Clock interface.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return Func(time.Now)
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}

// Sequence returns a Clock that reports the given times in order, one per call.
// Once exhausted it keeps reporting the last one. With no times it reports the
// zero time.
func Sequence(times ...time.Time) Clock {
	return &sequence{times: append([]time.Time(nil), times...)}
}

type sequence struct {
	mu    sync.Mutex
	times []time.Time
	next  int
}

func (s *sequence) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.times) == 0 {
		return time.Time{}
	}
	t := s.times[s.next]
	if s.next < len(s.times)-1 {
		s.next++
	}
	return t
}
