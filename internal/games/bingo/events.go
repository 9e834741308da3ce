package bingo

import "sync"

// EventKind identifies a notification emitted by a countdown or a round.
type EventKind string

const (
	EventTick        EventKind = "tick"
	EventLastSeconds EventKind = "last_seconds"
	EventTimeAdded   EventKind = "time_added"
	EventTimeRemoved EventKind = "time_removed"
	EventTimeUp      EventKind = "time_up"
	EventNumberDrawn EventKind = "number_drawn"
	EventCellMarked  EventKind = "cell_marked"
	EventLifeLost    EventKind = "life_lost"
	EventRoundWon    EventKind = "round_won"
	EventRoundLost   EventKind = "round_lost"
)

// Event is a single notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Remaining int // seconds left when the event was produced
	Delta     int // seconds added or removed
	Number    int // drawn or marked number
	Lives     int // lives left after a life was lost
	Reason    EndReason
}

// Listener receives events. Countdown events arrive on the ticker goroutine,
// so listeners must not assume the caller's goroutine.
type Listener func(Event)

// listeners is a copy-on-read list of subscribers.
type listeners struct {
	mu   sync.RWMutex
	list []Listener
}

func (l *listeners) add(fn Listener) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.list = append(l.list, fn)
	l.mu.Unlock()
}

func (l *listeners) emit(events ...Event) {
	if len(events) == 0 {
		return
	}
	l.mu.RLock()
	list := make([]Listener, len(l.list))
	copy(list, l.list)
	l.mu.RUnlock()

	for _, ev := range events {
		for _, fn := range list {
			fn(ev)
		}
	}
}
