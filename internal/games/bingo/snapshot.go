package bingo

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is a read-only copy of a round, safe to keep after the round
// moves on.
type Snapshot struct {
	ID        uuid.UUID
	Mode      Mode
	Ticket    Ticket
	Current   int   // 0 when no number is on offer
	Called    []int // oldest first
	PoolLeft  int
	Lives     int // lives mode only
	Remaining int // seconds, timer mode only
	Score     int
	Correct   int
	Mistakes  int
	State     State
	Reason    EndReason
	Paused    bool
	StartedAt time.Time
	EndedAt   time.Time
}

// IsOver reports whether the round reached a terminal state.
func (s Snapshot) IsOver() bool {
	return s.State != StateActive
}

// Result maps the state to the player-facing outcome.
func (s Snapshot) Result() Result {
	switch s.State {
	case StateWon:
		return ResultWin
	case StateLost:
		return ResultLose
	default:
		return ResultNone
	}
}

// Duration is the time from start to end, or zero while the round is live.
func (s Snapshot) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Snapshot returns a deep copy of the round state.
func (r *Round) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		ID:        r.id,
		Mode:      r.cfg.Mode,
		Ticket:    r.ticket.Clone(),
		Current:   r.current,
		Called:    append([]int(nil), r.called...),
		PoolLeft:  r.pool.Len(),
		Lives:     r.lives,
		Score:     r.score,
		Correct:   r.correct,
		Mistakes:  r.mistakes,
		State:     r.state,
		Reason:    r.reason,
		Paused:    r.paused,
		StartedAt: r.startedAt,
		EndedAt:   r.endedAt,
	}
	if r.countdown != nil {
		snap.Remaining = r.countdown.Remaining()
	}
	return snap
}
