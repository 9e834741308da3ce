// Package bingo implements a single-player 90-ball bingo round: ticket
// generation, the draw pool, a countdown timer and the accept/reject state
// machine, plus the registry adapter that lets the arcade platform play it.
package bingo

import (
	"fmt"
	"strings"
)

// Ticket geometry and number range for 90-ball bingo.
const (
	Rows             = 3
	Cols             = 9
	NumbersPerRow    = 5
	NumbersPerTicket = Rows * NumbersPerRow
	MinNumber        = 1
	MaxNumber        = 90
)

// Cell is a filled ticket position.
type Cell struct {
	Number int
	Marked bool
}

// Ticket is a 3x9 grid. A nil cell is an empty position.
type Ticket struct {
	cells [Rows][Cols]*Cell
}

// ColumnRange returns the inclusive number range reserved for a column:
// 1-9, 10-19 ... 70-79, 80-90.
func ColumnRange(col int) (lo, hi int) {
	switch {
	case col <= 0:
		return 1, 9
	case col >= Cols-1:
		return 80, 90
	default:
		return col * 10, col*10 + 9
	}
}

// columnOf returns the column that owns number n.
func columnOf(n int) int {
	if n >= 80 {
		return Cols - 1
	}
	return n / 10
}

// NewTicket builds a ticket from a grid of numbers where 0 means empty.
// The result is not validated.
func NewTicket(grid [Rows][Cols]int) Ticket {
	var t Ticket
	for r := range Rows {
		for c := range Cols {
			if grid[r][c] != 0 {
				t.cells[r][c] = &Cell{Number: grid[r][c]}
			}
		}
	}
	return t
}

// Cell returns the cell at (row, col), or nil if the position is empty or
// out of range.
func (t *Ticket) Cell(row, col int) *Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return nil
	}
	return t.cells[row][col]
}

// Find locates number n on the ticket.
func (t *Ticket) Find(n int) (row, col int, ok bool) {
	if n < MinNumber || n > MaxNumber {
		return 0, 0, false
	}
	col = columnOf(n)
	for row = range Rows {
		if c := t.cells[row][col]; c != nil && c.Number == n {
			return row, col, true
		}
	}
	return 0, 0, false
}

// Numbers returns all filled numbers in row-major order.
func (t *Ticket) Numbers() []int {
	nums := make([]int, 0, NumbersPerTicket)
	for r := range Rows {
		for c := range Cols {
			if cell := t.cells[r][c]; cell != nil {
				nums = append(nums, cell.Number)
			}
		}
	}
	return nums
}

// RowNumbers returns the filled numbers of a row, left to right.
func (t *Ticket) RowNumbers(row int) []int {
	var nums []int
	for c := range Cols {
		if cell := t.Cell(row, c); cell != nil {
			nums = append(nums, cell.Number)
		}
	}
	return nums
}

// RowComplete reports whether every filled cell of the row is marked.
// A row with no filled cells is never complete.
func (t *Ticket) RowComplete(row int) bool {
	filled := 0
	for c := range Cols {
		cell := t.Cell(row, c)
		if cell == nil {
			continue
		}
		if !cell.Marked {
			return false
		}
		filled++
	}
	return filled > 0
}

// MarkedCount returns how many cells are marked.
func (t *Ticket) MarkedCount() int {
	n := 0
	for r := range Rows {
		for c := range Cols {
			if cell := t.cells[r][c]; cell != nil && cell.Marked {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy that shares no cells with t.
func (t *Ticket) Clone() Ticket {
	var out Ticket
	for r := range Rows {
		for c := range Cols {
			if cell := t.cells[r][c]; cell != nil {
				cp := *cell
				out.cells[r][c] = &cp
			}
		}
	}
	return out
}

// Validate checks the structural rules of a 90-ball ticket.
func (t *Ticket) Validate() error {
	seen := make(map[int]bool, NumbersPerTicket)
	total := 0

	for r := range Rows {
		perRow := 0
		for c := range Cols {
			if t.cells[r][c] != nil {
				perRow++
			}
		}
		if perRow != NumbersPerRow {
			return fmt.Errorf("%w: row %d has %d numbers, want %d", ErrInvalidTicket, r, perRow, NumbersPerRow)
		}
		total += perRow
	}
	if total != NumbersPerTicket {
		return fmt.Errorf("%w: %d numbers, want %d", ErrInvalidTicket, total, NumbersPerTicket)
	}

	for c := range Cols {
		lo, hi := ColumnRange(c)
		filled, prev := 0, 0
		for r := range Rows {
			cell := t.cells[r][c]
			if cell == nil {
				continue
			}
			filled++
			n := cell.Number
			if n < lo || n > hi {
				return fmt.Errorf("%w: %d outside column %d range %d-%d", ErrInvalidTicket, n, c, lo, hi)
			}
			if seen[n] {
				return fmt.Errorf("%w: duplicate number %d", ErrInvalidTicket, n)
			}
			seen[n] = true
			if prev != 0 && n <= prev {
				return fmt.Errorf("%w: column %d not ascending (%d after %d)", ErrInvalidTicket, c, n, prev)
			}
			prev = n
		}
		if filled < 1 || filled > Rows {
			return fmt.Errorf("%w: column %d has %d numbers", ErrInvalidTicket, c, filled)
		}
	}
	return nil
}

// String renders the ticket as three lines of fixed-width numbers, with
// ".." for empty cells and a trailing "*" on marked ones.
func (t *Ticket) String() string {
	var sb strings.Builder
	for r := range Rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Cols {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := t.cells[r][c]
			switch {
			case cell == nil:
				sb.WriteString(" .. ")
			case cell.Marked:
				fmt.Fprintf(&sb, " %2d*", cell.Number)
			default:
				fmt.Fprintf(&sb, " %2d ", cell.Number)
			}
		}
	}
	return sb.String()
}
