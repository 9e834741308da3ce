package bingo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-bingo/internal/core"
)

const (
	cellWidth = 4 // " 42 "
	boxW      = Cols*cellWidth + 2
	boxH      = Rows + 2
	boxY      = 3
	calledMax = 10 // most recent numbers shown on the called line
)

var reasonText = map[EndReason]string{
	ReasonBingo:          "Full row marked",
	ReasonLivesExhausted: "Out of lives",
	ReasonTimeUp:         "Time is up",
	ReasonPoolExhausted:  "No numbers left",
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.round == nil {
		g.renderError(dst)
		return
	}

	snap := g.round.Snapshot()
	boxX := (g.screenW - boxW) / 2

	g.renderHUD(dst, snap)
	renderTicket(dst, &snap.Ticket, boxX, boxY)
	g.renderStatus(dst, snap, boxY+boxH+1)
	g.renderOverlays(dst, snap, boxX)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Could not start a round", core.ColorRed)
	if g.err != nil {
		dst.DrawTextCentered(y, g.err.Error(), core.ColorGray)
	}
	dst.DrawTextCentered(y+2, "R: Retry | Q: Quit", core.ColorGray)
}

// renderHUD draws the title, mode and score.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(0, g.Title(), core.ColorCyan)
	info := fmt.Sprintf("Mode: %s   Score: %d", snap.Mode, snap.Score)
	dst.DrawTextCentered(1, info, core.ColorDefault)
}

// renderTicket draws the 3x9 grid inside a box. Marked numbers are green and
// bracketed so they stay distinguishable without colour.
func renderTicket(dst *core.Screen, t *Ticket, x, y int) {
	dst.DrawBox(x, y, boxW, boxH, core.ColorWhite)
	for r := range Rows {
		for c := range Cols {
			px := x + 1 + c*cellWidth
			py := y + 1 + r
			cell := t.Cell(r, c)
			switch {
			case cell == nil:
				dst.DrawTextColor(px, py, " .. ", core.ColorGray)
			case cell.Marked:
				dst.DrawTextColor(px, py, fmt.Sprintf("[%2d]", cell.Number), core.ColorBrightGreen)
			default:
				dst.DrawText(px, py, fmt.Sprintf(" %2d ", cell.Number))
			}
		}
	}
}

// renderStatus draws the current number, lives, clock and recent calls.
func (g *Game) renderStatus(dst *core.Screen, snap Snapshot, y int) {
	if snap.Current > 0 && !snap.IsOver() {
		dst.DrawTextCentered(y, fmt.Sprintf(">> %2d <<", snap.Current), core.ColorBrightYellow)
	} else {
		dst.DrawTextCentered(y, "--", core.ColorGray)
	}

	var parts []string
	if snap.Mode.Lives {
		parts = append(parts, "Lives: "+hearts(snap.Lives, g.round.cfg.Lives))
	}
	if snap.Mode.Timer {
		parts = append(parts, "Time: "+FormatSeconds(snap.Remaining))
	}
	parts = append(parts, fmt.Sprintf("Left: %d", snap.PoolLeft))
	status := strings.Join(parts, "   ")

	color := core.ColorDefault
	if snap.Mode.Timer && snap.Remaining < g.warnAt && !snap.IsOver() {
		color = core.ColorRed
	}
	dst.DrawTextCentered(y+1, status, color)

	dst.DrawTextCentered(y+2, "Called: "+recent(snap.Called, calledMax), core.ColorGray)

	if g.feedback != "" {
		dst.DrawTextCentered(y+3, g.feedback, core.ColorYellow)
	}

	dst.DrawTextCentered(g.screenH-1, "A: Yes | X: No | P: Pause | Q: Quit", core.ColorGray)
}

// renderOverlays draws the pause and game over boxes over the ticket.
func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot, boxX int) {
	centerX := boxX + boxW/2
	centerY := boxY + boxH/2

	switch {
	case snap.State == StateWon:
		drawOverlay(dst, centerX, centerY, core.ColorBrightGreen,
			"BINGO!", fmt.Sprintf("Score: %d", snap.Score), "Press R to play again")
	case snap.State == StateLost:
		drawOverlay(dst, centerX, centerY, core.ColorRed,
			"ROUND LOST", reasonText[snap.Reason], fmt.Sprintf("Score: %d", snap.Score), "Press R to play again")
	case snap.Paused:
		drawOverlay(dst, centerX, centerY, core.ColorYellow, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered, boxed block of lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	w := maxLen + 4
	h := len(lines) + 2
	x := centerX - w/2
	y := centerY - h/2

	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			dst.Set(px, py, ' ')
		}
	}
	dst.DrawBox(x, y, w, h, c)
	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, y+1+i, line, c)
	}
}

// hearts renders lives as filled and empty hearts.
func hearts(left, total int) string {
	left = max(left, 0)
	total = max(total, left)
	return strings.Repeat("♥", left) + strings.Repeat("♡", total-left)
}

// recent returns the last n called numbers, newest last.
func recent(called []int, n int) string {
	if len(called) == 0 {
		return "none"
	}
	start := max(len(called)-n, 0)
	parts := make([]string, 0, len(called)-start)
	for _, v := range called[start:] {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, " ")
}
