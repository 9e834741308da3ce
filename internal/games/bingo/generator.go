package bingo

import (
	"fmt"
	"math/rand"
	"sort"
)

// TicketSource produces tickets for new rounds.
type TicketSource interface {
	Generate() (Ticket, error)
}

// rowPair is a pair of rows that share a two-number column.
type rowPair [2]int

// doublePairs gives every row exactly four numbers from the six two-number
// columns, which together with one single-number column makes five.
var doublePairs = [...]rowPair{{0, 1}, {0, 1}, {0, 2}, {0, 2}, {1, 2}, {1, 2}}

const (
	singleColumns      = Rows // columns holding one number, one per row
	defaultMaxAttempts = 256  // draws per number before giving up
)

// Generator builds 90-ball tickets in two phases: first it decides which
// cells are filled, then it picks numbers for those cells.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int // per number
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, maxAttempts: defaultMaxAttempts}
}

// Generate returns a new structurally valid ticket.
func (g *Generator) Generate() (Ticket, error) {
	layout := g.allocate()

	var t Ticket
	used := make(map[int]bool, NumbersPerTicket)
	for c := range Cols {
		if err := g.fillColumn(&t, layout, c, used); err != nil {
			return Ticket{}, err
		}
	}
	return t, nil
}

// allocate marks the cells that will hold numbers.
func (g *Generator) allocate() [Rows][Cols]bool {
	var layout [Rows][Cols]bool

	cols := g.rng.Perm(Cols)
	rows := g.rng.Perm(Rows)
	for i := range singleColumns {
		layout[rows[i]][cols[i]] = true
	}

	pairs := doublePairs
	g.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
	for i, col := range cols[singleColumns:] {
		p := pairs[i]
		layout[p[0]][col] = true
		layout[p[1]][col] = true
	}
	return layout
}

// fillColumn draws distinct numbers for the allocated cells of one column
// and places them ascending top to bottom.
func (g *Generator) fillColumn(t *Ticket, layout [Rows][Cols]bool, col int, used map[int]bool) error {
	var rows []int
	for r := range Rows {
		if layout[r][col] {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	lo, hi := ColumnRange(col)
	nums := make([]int, 0, len(rows))
	for len(nums) < len(rows) {
		n, ok := g.draw(lo, hi, used)
		if !ok {
			return fmt.Errorf("%w: column %d (%d-%d)", ErrGenerationExhausted, col, lo, hi)
		}
		used[n] = true
		nums = append(nums, n)
	}
	sort.Ints(nums)

	for i, r := range rows {
		t.cells[r][col] = &Cell{Number: nums[i]}
	}
	return nil
}

// draw picks a uniformly random unused number in [lo, hi].
func (g *Generator) draw(lo, hi int, used map[int]bool) (int, bool) {
	for range g.maxAttempts {
		n := lo + g.rng.Intn(hi-lo+1)
		if !used[n] {
			return n, true
		}
	}
	return 0, false
}
