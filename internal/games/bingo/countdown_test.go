package bingo

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestCountdownTicksToTimeUp(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cd := NewCountdown(clock, CountdownConfig{Seconds: 3, LastSeconds: 2})
	events := newEventLog()
	cd.Subscribe(events.listen)

	cd.Start()
	waitForTicker(t, clock, 1)
	if !cd.Running() {
		t.Fatal("countdown should be running after Start()")
	}

	clock.Advance(time.Second)
	if ev := events.expect(t, EventTick); ev.Remaining != 3 {
		t.Errorf("first tick Remaining = %d, want 3", ev.Remaining)
	}

	clock.Advance(time.Second)
	if ev := events.expect(t, EventTick); ev.Remaining != 2 {
		t.Errorf("second tick Remaining = %d, want 2", ev.Remaining)
	}

	clock.Advance(time.Second)
	events.expect(t, EventTick)
	if ev := events.expect(t, EventLastSeconds); ev.Remaining != 1 {
		t.Errorf("last_seconds Remaining = %d, want 1", ev.Remaining)
	}
	if cd.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", cd.Remaining())
	}

	clock.Advance(time.Second)
	events.expect(t, EventTimeUp)
	if cd.Running() {
		t.Error("countdown should stop after time_up")
	}

	clock.Advance(time.Second)
	events.quiet(t)
}

func TestCountdownWarningDisabled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cd := NewCountdown(clock, CountdownConfig{Seconds: 2, LastSeconds: -1})
	events := newEventLog()
	cd.Subscribe(events.listen)

	cd.Start()
	waitForTicker(t, clock, 1)
	for range 2 {
		clock.Advance(time.Second)
		events.expect(t, EventTick)
	}
	clock.Advance(time.Second)
	events.expect(t, EventTimeUp)
}

func TestCountdownRestartReplacesTicker(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cd := NewCountdown(clock, CountdownConfig{Seconds: 10})
	events := newEventLog()
	cd.Subscribe(events.listen)

	cd.Start()
	cd.Start()

	clock.Advance(time.Second)
	if ev := events.expect(t, EventTick); ev.Remaining != 10 {
		t.Errorf("tick Remaining = %d, want 10", ev.Remaining)
	}
	events.quiet(t)
	if cd.Remaining() != 9 {
		t.Errorf("Remaining() = %d, restarted countdown ticked more than once", cd.Remaining())
	}

	clock.Advance(time.Second)
	events.expect(t, EventTick)
	if cd.Remaining() != 8 {
		t.Errorf("Remaining() = %d, want 8", cd.Remaining())
	}
}

func TestCountdownStopIsIdempotent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cd := NewCountdown(clock, CountdownConfig{Seconds: 5})
	events := newEventLog()
	cd.Subscribe(events.listen)

	cd.Stop() // never started
	cd.Start()
	cd.Stop()
	cd.Stop()

	if cd.Running() {
		t.Error("countdown should not be running after Stop()")
	}
	clock.Advance(time.Second)
	events.quiet(t)
	if cd.Remaining() != 5 {
		t.Errorf("Remaining() = %d, stopped countdown should not tick", cd.Remaining())
	}
}

func TestCountdownStopStartKeepsTime(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cd := NewCountdown(clock, CountdownConfig{Seconds: 5, LastSeconds: -1})
	events := newEventLog()
	cd.Subscribe(events.listen)

	cd.Start()
	waitForTicker(t, clock, 1)
	clock.Advance(time.Second)
	events.expect(t, EventTick)

	cd.Stop()
	cd.Start()
	waitForTicker(t, clock, 1)
	clock.Advance(time.Second)
	if ev := events.expect(t, EventTick); ev.Remaining != 4 {
		t.Errorf("resumed tick Remaining = %d, want 4", ev.Remaining)
	}
}

func TestCountdownAddRemoveTime(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cd := NewCountdown(clock, CountdownConfig{})
	events := newEventLog()
	cd.Subscribe(events.listen)

	if cd.Remaining() != DefaultSeconds {
		t.Fatalf("Remaining() = %d, want default %d", cd.Remaining(), DefaultSeconds)
	}

	cd.AddTime(DefaultTimeDelta)
	ev := events.expect(t, EventTimeAdded)
	if ev.Delta != 5 || ev.Remaining != 65 {
		t.Errorf("time_added = %+v", ev)
	}

	cd.RemoveTime(70)
	ev = events.expect(t, EventTimeRemoved)
	if ev.Delta != 70 || ev.Remaining != -5 {
		t.Errorf("time_removed = %+v", ev)
	}
	if cd.Display() != "00:00" {
		t.Errorf("Display() = %q for negative time", cd.Display())
	}

	// A non-positive balance ends on the next tick.
	cd.Start()
	waitForTicker(t, clock, 1)
	clock.Advance(time.Second)
	events.expect(t, EventTimeUp)
}

func TestCountdownCustomInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cd := NewCountdown(clock, CountdownConfig{Seconds: 3, Interval: 250 * time.Millisecond})
	events := newEventLog()
	cd.Subscribe(events.listen)

	cd.Start()
	waitForTicker(t, clock, 1)
	clock.Advance(200 * time.Millisecond)
	events.quiet(t)
	clock.Advance(50 * time.Millisecond)
	events.expect(t, EventTick)
	cd.Stop()
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{59, "00:59"},
		{60, "01:00"},
		{125, "02:05"},
		{3600, "60:00"},
		{-3, "00:00"},
	}
	for _, tc := range tests {
		if got := FormatSeconds(tc.in); got != tc.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
