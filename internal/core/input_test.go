package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("New frame should be empty")
	}

	f.Set(ActionAccept)
	f.Set(ActionPause)

	if !f.Has(ActionAccept) || !f.Has(ActionPause) {
		t.Error("Frame should report the actions that were set")
	}
	if f.Has(ActionReject) {
		t.Error("Frame should not report unset actions")
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionAccept) {
		t.Error("Clear should reset the frame")
	}
}

func TestInputFrameIgnoresInvalidActions(t *testing.T) {
	var f InputFrame
	f.Set(ActionNone)
	f.Set(Action(-3))
	f.Set(actionCount)

	if !f.Empty() {
		t.Errorf("Invalid actions should be ignored, frame = %b", f)
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone is never set")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionAccept, "Accept"},
		{ActionReject, "Reject"},
		{ActionScoreboard, "Scoreboard"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
