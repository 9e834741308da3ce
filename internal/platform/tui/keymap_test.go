package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bingo/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a accepts", runeKey("a"), core.ActionAccept, false},
		{"y accepts", runeKey("y"), core.ActionAccept, false},
		{"space accepts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionAccept, false},
		{"enter accepts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionAccept, false},
		{"x rejects", runeKey("x"), core.ActionReject, false},
		{"n rejects", runeKey("n"), core.ActionReject, false},
		{"p pauses", runeKey("p"), core.ActionPause, false},
		{"r restarts", runeKey("r"), core.ActionRestart, false},
		{"b goes back", runeKey("b"), core.ActionBack, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("action = %v, want %v", action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("quit = %v, want %v", quit, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("a"), &frame) {
		t.Fatal("a should not quit")
	}
	if km.MapKeyToFrame(runeKey("z"), &frame) {
		t.Fatal("z should not quit")
	}
	if !frame.Has(core.ActionAccept) {
		t.Error("frame should have Accept")
	}
	if frame.Has(core.ActionReject) {
		t.Error("frame should not have Reject")
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tc.msg.String(), got, tc.want)
		}
	}
}
