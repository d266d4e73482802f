package clock_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/otpclock/pkg/clock"
)

func TestSystem(t *testing.T) {
	t.Parallel()
	before := time.Now()
	got := clock.System().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixed(t *testing.T) {
	t.Parallel()
	at := time.Unix(59, 0)
	clk := clock.Fixed(at)

	for range 3 {
		assert.True(t, at.Equal(clk.Now()))
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()
	calls := 0
	clk := clock.Func(func() time.Time {
		calls++
		return time.Unix(int64(calls), 0)
	})

	assert.Equal(t, int64(1), clk.Now().Unix())
	assert.Equal(t, int64(2), clk.Now().Unix())
}

func TestSequence(t *testing.T) {
	t.Parallel()

	t.Run("reports times in order then repeats the last", func(t *testing.T) {
		t.Parallel()
		clk := clock.Sequence(time.Unix(0, 0), time.Unix(29, 0), time.Unix(30, 0))

		assert.Equal(t, int64(0), clk.Now().Unix())
		assert.Equal(t, int64(29), clk.Now().Unix())
		assert.Equal(t, int64(30), clk.Now().Unix())
		assert.Equal(t, int64(30), clk.Now().Unix())
	})

	t.Run("empty sequence reports zero time", func(t *testing.T) {
		t.Parallel()
		assert.True(t, clock.Sequence().Now().IsZero())
	})

	t.Run("input slice is copied", func(t *testing.T) {
		t.Parallel()
		times := []time.Time{time.Unix(1, 0)}
		clk := clock.Sequence(times...)
		times[0] = time.Unix(2, 0)

		assert.Equal(t, int64(1), clk.Now().Unix())
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()
		times := make([]time.Time, 100)
		for i := range times {
			times[i] = time.Unix(int64(i), 0)
		}
		clk := clock.Sequence(times...)

		var wg sync.WaitGroup
		seen := make(chan int64, len(times))
		for range times {
			wg.Add(1)
			go func() {
				defer wg.Done()
				seen <- clk.Now().Unix()
			}()
		}
		wg.Wait()
		close(seen)

		unique := make(map[int64]bool)
		for s := range seen {
			unique[s] = true
		}
		assert.Len(t, unique, len(times))
	})
}
