package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	f       func()
	delay   time.Duration
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{f: f, delay: d}
	c.timers = append(c.timers, t)
	return t
}

// fireAll runs the scheduled callbacks. includeStopped also runs stopped
// ones, like a timer that fired just before Stop was called.
func (c *fakeClock) fireAll(includeStopped bool) {
	c.mu.Lock()
	timers := append([]*fakeTimer(nil), c.timers...)
	c.mu.Unlock()
	for _, t := range timers {
		if t.stopped && !includeStopped {
			continue
		}
		t.f()
	}
}

func TestDebouncer_RunsOnlyLastTrigger(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncerWithClock(500*time.Millisecond, clock.AfterFunc)

	var calls []int
	for i := 1; i <= 3; i++ {
		i := i
		d.Trigger(func() { calls = append(calls, i) })
	}

	require.Len(t, clock.timers, 3)
	assert.True(t, clock.timers[0].stopped)
	assert.True(t, clock.timers[1].stopped)
	assert.False(t, clock.timers[2].stopped)
	assert.Equal(t, 500*time.Millisecond, clock.timers[2].delay)

	clock.fireAll(false)
	assert.Equal(t, []int{3}, calls)
}

func TestDebouncer_LateFireOfReplacedTimerIsIgnored(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncerWithClock(time.Second, clock.AfterFunc)

	var calls []string
	d.Trigger(func() { calls = append(calls, "first") })
	d.Trigger(func() { calls = append(calls, "second") })

	clock.fireAll(true)
	assert.Equal(t, []string{"second"}, calls)
}

func TestDebouncer_Stop(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncerWithClock(time.Second, clock.AfterFunc)

	called := false
	d.Trigger(func() { called = true })
	d.Stop()

	assert.True(t, clock.timers[0].stopped)
	clock.fireAll(true)
	assert.False(t, called)

	d.Stop()
}

func TestDebouncer_RealClock(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	done := make(chan int, 3)
	d.Trigger(func() { done <- 1 })
	d.Trigger(func() { done <- 2 })

	select {
	case got := <-done:
		assert.Equal(t, 2, got)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced function never ran")
	}

	select {
	case got := <-done:
		t.Fatalf("unexpected extra run: %d", got)
	case <-time.After(50 * time.Millisecond):
	}
}
