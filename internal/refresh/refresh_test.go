package refresh

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestTick_RunsAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int64
	done := Tick(ctx, 10*time.Millisecond, func() { calls.Add(1) })

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop after cancel")
	}

	if calls.Load() == 0 {
		t.Error("ticker never fired")
	}

	// No more invocations after the loop stopped.
	after := calls.Load()
	time.Sleep(50 * time.Millisecond)
	if calls.Load() != after {
		t.Error("ticker fired after stop")
	}
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var calls atomic.Int64
	d := NewDebouncer(30*time.Millisecond, func() { calls.Add(1) })
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("invocations = %d, want 1 for the whole burst", got)
	}
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	var calls atomic.Int64
	d := NewDebouncer(20*time.Millisecond, func() { calls.Add(1) })
	defer d.Stop()

	d.Trigger()
	time.Sleep(60 * time.Millisecond)
	d.Trigger()
	time.Sleep(60 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Errorf("invocations = %d, want 2 for two separated bursts", got)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var calls atomic.Int64
	d := NewDebouncer(30*time.Millisecond, func() { calls.Add(1) })

	d.Trigger()
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("invocations = %d, want 0 after Stop", got)
	}
}
