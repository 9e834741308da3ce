package bingo

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// eventLog collects events from any goroutine.
type eventLog struct {
	ch chan Event
}

func newEventLog() *eventLog {
	return &eventLog{ch: make(chan Event, 512)}
}

func (l *eventLog) listen(ev Event) {
	l.ch <- ev
}

// next waits for the next event.
func (l *eventLog) next(t *testing.T) Event {
	t.Helper()
	select {
	case ev := <-l.ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an event")
		return Event{}
	}
}

// expect waits for the next event and checks its kind.
func (l *eventLog) expect(t *testing.T, kind EventKind) Event {
	t.Helper()
	ev := l.next(t)
	if ev.Kind != kind {
		t.Fatalf("got event %s (%+v), want %s", ev.Kind, ev, kind)
	}
	return ev
}

// until skips events until one of the given kind arrives.
func (l *eventLog) until(t *testing.T, kind EventKind) Event {
	t.Helper()
	for {
		if ev := l.next(t); ev.Kind == kind {
			return ev
		}
	}
}

// quiet fails if an event shows up within a short grace period.
func (l *eventLog) quiet(t *testing.T) {
	t.Helper()
	select {
	case ev := <-l.ch:
		t.Fatalf("unexpected event %s (%+v)", ev.Kind, ev)
	case <-time.After(50 * time.Millisecond):
	}
}

// drain returns whatever has been delivered so far.
func (l *eventLog) drain() []Event {
	var out []Event
	for {
		select {
		case ev := <-l.ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// waitForTicker blocks until the fake clock has n registered tickers.
func waitForTicker(t *testing.T, clock *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := clock.BlockUntilContext(ctx, n); err != nil {
		t.Fatalf("ticker was not registered: %v", err)
	}
}
