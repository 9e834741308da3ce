package bingo

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// State is the round's position in its state machine.
type State string

const (
	StateActive State = "active"
	StateWon    State = "won"
	StateLost   State = "lost"
)

// Result is the outcome exposed to players.
type Result string

const (
	ResultNone Result = ""
	ResultWin  Result = "win"
	ResultLose Result = "lose"
)

// EndReason records which terminal condition ended the round.
type EndReason string

const (
	ReasonNone           EndReason = ""
	ReasonBingo          EndReason = "bingo"
	ReasonLivesExhausted EndReason = "lives_exhausted"
	ReasonTimeUp         EndReason = "time_up"
	ReasonPoolExhausted  EndReason = "pool_exhausted"
)

// Mode selects the loss conditions. Both may be on; whichever triggers
// first ends the round.
type Mode struct {
	Lives bool // finite mistakes
	Timer bool // countdown expiry loses, correct accepts add time
}

// String returns "lives", "timer", "lives+timer" or "none".
func (m Mode) String() string {
	var parts []string
	if m.Lives {
		parts = append(parts, "lives")
	}
	if m.Timer {
		parts = append(parts, "timer")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Scoring sets the points awarded during a round.
type Scoring struct {
	MarkPoints   int // correct accept
	RejectPoints int // correct reject
	WinBonus     int // bingo
	LifeBonus    int // per life left on a win
	SecondBonus  int // per second left on a win
}

// DefaultLives is the life count when RoundConfig.Lives is unset.
const DefaultLives = 3

// RoundConfig configures a new round. Zero values take defaults.
type RoundConfig struct {
	Mode        Mode
	Lives       int
	Countdown   CountdownConfig
	TimeBonus   int // seconds added on a correct accept (timer mode); negative for none
	TimePenalty int // seconds removed on a mistake (timer mode); negative for none
	Scoring     Scoring

	Clock   clockwork.Clock
	Rand    *rand.Rand
	Tickets TicketSource
	Logger  *log.Logger
}

func (c RoundConfig) withDefaults() RoundConfig {
	if !c.Mode.Lives && !c.Mode.Timer {
		c.Mode.Lives = true
	}
	if c.Lives <= 0 {
		c.Lives = DefaultLives
	}
	if c.TimeBonus == 0 {
		c.TimeBonus = DefaultTimeDelta
	}
	if c.TimePenalty == 0 {
		c.TimePenalty = DefaultTimeDelta
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.Tickets == nil {
		c.Tickets = NewGenerator(c.Rand)
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}

// Round is one bingo game. All methods are safe for concurrent use; the
// countdown's ticker goroutine shares the same lock as Accept and Reject.
type Round struct {
	id     uuid.UUID
	cfg    RoundConfig
	logger *log.Logger

	mu        sync.Mutex
	ticket    Ticket
	pool      *Pool
	countdown *Countdown // nil unless timer mode
	current   int        // 0 once the pool ran dry
	called    []int
	lives     int
	score     int
	correct   int
	mistakes  int
	state     State
	reason    EndReason
	paused    bool
	closed    bool
	startedAt time.Time
	endedAt   time.Time

	// Events are queued under mu and delivered after it is released.
	outMu  sync.Mutex
	outbox []Event
	subs   listeners
}

// NewRound generates a ticket, draws the first number and, in timer mode,
// starts the countdown.
func NewRound(cfg RoundConfig) (*Round, error) {
	cfg = cfg.withDefaults()

	ticket, err := cfg.Tickets.Generate()
	if err != nil {
		return nil, fmt.Errorf("bingo: generate ticket: %w", err)
	}
	if err := ticket.Validate(); err != nil {
		return nil, err
	}

	r := &Round{
		id:        uuid.New(),
		cfg:       cfg,
		ticket:    ticket,
		pool:      NewPool(cfg.Rand),
		called:    make([]int, 0, MaxNumber),
		state:     StateActive,
		startedAt: cfg.Clock.Now(),
	}
	r.logger = cfg.Logger.With("round", r.id.String()[:8])
	if cfg.Mode.Lives {
		r.lives = cfg.Lives
	}

	r.drawNext()
	r.outbox = nil // nobody has subscribed yet

	if cfg.Mode.Timer {
		r.countdown = NewCountdown(cfg.Clock, cfg.Countdown)
		r.countdown.Subscribe(r.onCountdown)
		r.countdown.Start()
	}

	r.logger.Debug("round started", "mode", cfg.Mode, "first", r.current)
	return r, nil
}

// ID returns the round's unique identifier.
func (r *Round) ID() uuid.UUID {
	return r.id
}

// Subscribe registers a listener for round and countdown events.
func (r *Round) Subscribe(fn Listener) {
	r.subs.add(fn)
}

// Accept claims the current number is on the ticket.
func (r *Round) Accept() error {
	r.mu.Lock()
	err := r.accept()
	r.mu.Unlock()

	r.dispatch()
	return err
}

// Reject claims the current number is not on the ticket.
func (r *Round) Reject() error {
	r.mu.Lock()
	err := r.reject()
	r.mu.Unlock()

	r.dispatch()
	return err
}

func (r *Round) accept() error {
	if err := r.checkPlayable(); err != nil {
		return err
	}

	n := r.current
	row, col, found := r.ticket.Find(n)
	switch {
	case found && !r.ticket.cells[row][col].Marked:
		r.ticket.cells[row][col].Marked = true
		r.correct++
		r.score += r.cfg.Scoring.MarkPoints
		r.queue(Event{Kind: EventCellMarked, Number: n})
		r.logger.Debug("marked", "number", n, "row", row, "col", col)
		if r.countdown != nil && r.cfg.TimeBonus > 0 {
			r.countdown.AddTime(r.cfg.TimeBonus)
		}
		r.checkBingo()
	case found:
		// Already marked: no reward and no penalty.
		r.checkBingo()
	default:
		r.mistake(n)
	}

	r.advance(n)
	return nil
}

func (r *Round) reject() error {
	if err := r.checkPlayable(); err != nil {
		return err
	}

	n := r.current
	if row, col, found := r.ticket.Find(n); found && !r.ticket.cells[row][col].Marked {
		r.mistake(n)
	} else {
		r.correct++
		r.score += r.cfg.Scoring.RejectPoints
	}

	r.advance(n)
	return nil
}

func (r *Round) checkPlayable() error {
	if r.closed || r.state != StateActive {
		return ErrInvalidState
	}
	if r.paused {
		return ErrPaused
	}
	return nil
}

// mistake applies the penalty for a wrong call on n.
func (r *Round) mistake(n int) {
	r.mistakes++
	r.logger.Debug("wrong call", "number", n)

	if r.cfg.Mode.Lives {
		r.lives--
		r.queue(Event{Kind: EventLifeLost, Number: n, Lives: r.lives})
		if r.lives <= 0 {
			r.finish(StateLost, ReasonLivesExhausted)
			return
		}
	}
	if r.countdown != nil && r.cfg.TimePenalty > 0 {
		r.countdown.RemoveTime(r.cfg.TimePenalty)
	}
}

func (r *Round) checkBingo() {
	if r.state != StateActive {
		return
	}
	for row := range Rows {
		if r.ticket.RowComplete(row) {
			r.finish(StateWon, ReasonBingo)
			return
		}
	}
}

// advance records n as called and draws the next number unless the round
// has ended.
func (r *Round) advance(n int) {
	r.called = append(r.called, n)
	if r.state == StateActive {
		r.drawNext()
	}
}

func (r *Round) drawNext() {
	n, ok := r.pool.Draw()
	if !ok {
		r.current = 0
		r.finish(StateLost, ReasonPoolExhausted)
		return
	}
	r.current = n
	r.queue(Event{Kind: EventNumberDrawn, Number: n})
}

func (r *Round) finish(state State, reason EndReason) {
	r.state = state
	r.reason = reason
	r.endedAt = r.cfg.Clock.Now()

	remaining := 0
	if r.countdown != nil {
		r.countdown.Stop()
		remaining = max(r.countdown.Remaining(), 0)
	}

	kind := EventRoundLost
	if state == StateWon {
		kind = EventRoundWon
		r.score += r.cfg.Scoring.WinBonus
		if r.cfg.Mode.Lives {
			r.score += r.lives * r.cfg.Scoring.LifeBonus
		}
		if r.cfg.Mode.Timer {
			r.score += remaining * r.cfg.Scoring.SecondBonus
		}
	}
	r.queue(Event{Kind: kind, Reason: reason, Remaining: remaining, Lives: r.lives})
	r.logger.Info("round over",
		"state", state,
		"reason", reason,
		"score", r.score,
		"marked", r.ticket.MarkedCount(),
	)
}

// onCountdown relays countdown events and ends the round on time up.
func (r *Round) onCountdown(ev Event) {
	r.queue(ev)

	switch ev.Kind {
	case EventTimeAdded, EventTimeRemoved:
		// Raised from Accept/Reject while mu is held; they dispatch on unlock.
		return
	case EventTimeUp:
		r.mu.Lock()
		if r.state == StateActive && !r.closed {
			r.finish(StateLost, ReasonTimeUp)
		}
		r.mu.Unlock()
	}
	r.dispatch()
}

func (r *Round) queue(ev Event) {
	r.outMu.Lock()
	r.outbox = append(r.outbox, ev)
	r.outMu.Unlock()
}

func (r *Round) dispatch() {
	r.outMu.Lock()
	events := r.outbox
	r.outbox = nil
	r.outMu.Unlock()

	r.subs.emit(events...)
}

// Pause freezes the countdown and blocks Accept and Reject.
func (r *Round) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.paused || r.closed || r.state != StateActive {
		return
	}
	r.paused = true
	if r.countdown != nil {
		r.countdown.Stop()
	}
}

// Resume restarts a paused round.
func (r *Round) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.paused {
		return
	}
	r.paused = false
	if r.countdown != nil && r.state == StateActive && !r.closed {
		r.countdown.Start()
	}
}

// Close stops the countdown and makes further actions fail. Safe to call
// more than once.
func (r *Round) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	if r.countdown != nil {
		r.countdown.Stop()
	}
	return nil
}
