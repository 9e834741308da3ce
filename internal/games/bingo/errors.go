package bingo

import "errors"

var (
	// ErrInvalidState is returned by Accept and Reject once the round is over.
	ErrInvalidState = errors.New("bingo: round is over")

	// ErrPaused is returned by Accept and Reject while the round is paused.
	ErrPaused = errors.New("bingo: round is paused")

	// ErrGenerationExhausted means a column could not be filled within the
	// attempt budget. Column ranges make this unreachable in practice.
	ErrGenerationExhausted = errors.New("bingo: ticket generation exhausted")

	// ErrInvalidTicket wraps every structural violation reported by Ticket.Validate.
	ErrInvalidTicket = errors.New("bingo: invalid ticket")
)
