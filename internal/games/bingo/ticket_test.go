package bingo

import (
	"errors"
	"strings"
	"testing"
)

// sampleGrid is a valid ticket whose top row is 5 23 47 61 88.
var sampleGrid = [Rows][Cols]int{
	{5, 0, 23, 0, 47, 0, 61, 0, 88},
	{0, 12, 0, 34, 0, 52, 0, 70, 89},
	{7, 15, 0, 38, 0, 55, 0, 75, 0},
}

func TestNewTicketValid(t *testing.T) {
	ticket := NewTicket(sampleGrid)
	if err := ticket.Validate(); err != nil {
		t.Fatalf("sample ticket invalid: %v", err)
	}
	if got := ticket.RowNumbers(0); len(got) != 5 || got[0] != 5 || got[4] != 88 {
		t.Errorf("RowNumbers(0) = %v", got)
	}
	if len(ticket.Numbers()) != NumbersPerTicket {
		t.Errorf("Numbers() returned %d numbers", len(ticket.Numbers()))
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *[Rows][Cols]int)
		want   string
	}{
		{"short row", func(g *[Rows][Cols]int) { g[0][8] = 0 }, "row 0"},
		{"out of range", func(g *[Rows][Cols]int) { g[0][2] = 31 }, "outside column 2"},
		{"descending column", func(g *[Rows][Cols]int) { g[0][0], g[2][0] = 7, 5 }, "not ascending"},
		{"empty column", func(g *[Rows][Cols]int) {
			// Move 23 out of column 2 and keep the row at five numbers.
			g[0][2], g[0][1] = 0, 11
		}, "column 2 has 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid := sampleGrid
			tc.mutate(&grid)
			ticket := NewTicket(grid)
			err := ticket.Validate()
			if !errors.Is(err, ErrInvalidTicket) {
				t.Fatalf("Validate() = %v, want ErrInvalidTicket", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestFindAndRowComplete(t *testing.T) {
	ticket := NewTicket(sampleGrid)

	row, col, ok := ticket.Find(90)
	if ok {
		t.Errorf("Find(90) = (%d, %d), 90 is not on the ticket", row, col)
	}
	row, col, ok = ticket.Find(89)
	if !ok || row != 1 || col != 8 {
		t.Errorf("Find(89) = (%d, %d, %v), want (1, 8, true)", row, col, ok)
	}
	if _, _, ok := ticket.Find(0); ok {
		t.Error("Find(0) should fail")
	}

	for _, n := range []int{5, 23, 47, 61} {
		r, c, _ := ticket.Find(n)
		ticket.Cell(r, c).Marked = true
	}
	if ticket.RowComplete(0) {
		t.Error("row 0 complete with 88 unmarked")
	}
	ticket.Cell(0, 8).Marked = true
	if !ticket.RowComplete(0) {
		t.Error("row 0 should be complete")
	}
	if ticket.RowComplete(1) {
		t.Error("row 1 has nothing marked")
	}
	if ticket.MarkedCount() != 5 {
		t.Errorf("MarkedCount() = %d, want 5", ticket.MarkedCount())
	}
}

func TestCloneIsDeep(t *testing.T) {
	ticket := NewTicket(sampleGrid)
	clone := ticket.Clone()
	clone.Cell(0, 0).Marked = true

	if ticket.Cell(0, 0).Marked {
		t.Error("marking the clone changed the original")
	}
	if ticket.Cell(0, 1) != nil || clone.Cell(0, 1) != nil {
		t.Error("empty cells should stay nil")
	}
	if ticket.Cell(-1, 0) != nil || ticket.Cell(0, Cols) != nil {
		t.Error("out of range Cell() should be nil")
	}
}

func TestTicketString(t *testing.T) {
	ticket := NewTicket(sampleGrid)
	ticket.Cell(0, 0).Marked = true

	lines := strings.Split(ticket.String(), "\n")
	if len(lines) != Rows {
		t.Fatalf("String() has %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "  5*  .. ") {
		t.Errorf("first line = %q", lines[0])
	}
}
