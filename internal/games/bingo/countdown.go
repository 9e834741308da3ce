package bingo

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Countdown defaults.
const (
	DefaultSeconds     = 60
	DefaultLastSeconds = 10
	DefaultTimeDelta   = 5
	DefaultInterval    = time.Second
)

// CountdownConfig configures a Countdown. Zero fields take the defaults,
// except LastSeconds where a negative value disables the warning.
type CountdownConfig struct {
	Seconds     int
	LastSeconds int
	Interval    time.Duration
}

func (c CountdownConfig) withDefaults() CountdownConfig {
	if c.Seconds <= 0 {
		c.Seconds = DefaultSeconds
	}
	if c.LastSeconds == 0 {
		c.LastSeconds = DefaultLastSeconds
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	return c
}

// Countdown is a decrementing seconds counter driven by a clock ticker.
type Countdown struct {
	clock    clockwork.Clock
	interval time.Duration

	mu          sync.Mutex
	remaining   int
	lastSeconds int
	stop        chan struct{} // non-nil while running; closed to stop the ticker goroutine

	subs listeners
}

// NewCountdown creates a stopped countdown.
func NewCountdown(clock clockwork.Clock, cfg CountdownConfig) *Countdown {
	cfg = cfg.withDefaults()
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Countdown{
		clock:       clock,
		interval:    cfg.Interval,
		remaining:   cfg.Seconds,
		lastSeconds: cfg.LastSeconds,
	}
}

// Subscribe registers a listener for countdown events.
func (c *Countdown) Subscribe(fn Listener) {
	c.subs.add(fn)
}

// Start begins ticking once per interval. Starting a running countdown
// replaces its ticker rather than adding a second one.
func (c *Countdown) Start() {
	c.mu.Lock()
	if c.stop != nil {
		close(c.stop)
	}
	stop := make(chan struct{})
	c.stop = stop
	ticker := c.clock.NewTicker(c.interval)
	c.mu.Unlock()

	go c.run(ticker, stop)
}

// Stop cancels the ticker. It is safe to call on a stopped countdown.
func (c *Countdown) Stop() {
	c.mu.Lock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.mu.Unlock()
}

// Running reports whether the ticker is active.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// Remaining returns the seconds left. It may be zero or negative after a
// penalty, until the next tick reports time up.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// AddTime adds delta seconds without affecting the tick cadence.
func (c *Countdown) AddTime(delta int) {
	c.mu.Lock()
	c.remaining += delta
	ev := Event{Kind: EventTimeAdded, Delta: delta, Remaining: c.remaining}
	c.mu.Unlock()

	c.subs.emit(ev)
}

// RemoveTime subtracts delta seconds without affecting the tick cadence.
func (c *Countdown) RemoveTime(delta int) {
	c.mu.Lock()
	c.remaining -= delta
	ev := Event{Kind: EventTimeRemoved, Delta: delta, Remaining: c.remaining}
	c.mu.Unlock()

	c.subs.emit(ev)
}

// Display returns the remaining time as mm:ss.
func (c *Countdown) Display() string {
	return FormatSeconds(c.Remaining())
}

func (c *Countdown) run(ticker clockwork.Ticker, stop chan struct{}) {
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			if !c.tick(stop) {
				return
			}
		}
	}
}

// tick applies one interval and reports whether ticking should continue.
func (c *Countdown) tick(stop chan struct{}) bool {
	c.mu.Lock()
	if c.stop != stop {
		// Replaced or stopped while the tick was in flight.
		c.mu.Unlock()
		return false
	}

	var events []Event
	running := true
	if c.remaining > 0 {
		events = append(events, Event{Kind: EventTick, Remaining: c.remaining})
		if c.remaining < c.lastSeconds {
			events = append(events, Event{Kind: EventLastSeconds, Remaining: c.remaining})
		}
		c.remaining--
	} else {
		events = append(events, Event{Kind: EventTimeUp, Remaining: c.remaining})
		close(c.stop)
		c.stop = nil
		running = false
	}
	c.mu.Unlock()

	c.subs.emit(events...)
	return running
}

// FormatSeconds renders seconds as mm:ss. Negative values show as 00:00.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
