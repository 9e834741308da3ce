package core

// Action is a semantic player intent, decoupled from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionAccept            // the drawn number is on my ticket
	ActionReject            // the drawn number is not on my ticket
	ActionUp                // menu navigation
	ActionDown              // menu navigation
	ActionConfirm           // menu selection
	ActionBack              // leave the current screen
	ActionPause             // pause/unpause the round
	ActionRestart           // start a new round after game over
	ActionScoreboard        // open the scoreboard from the menu
	ActionQuit              // exit the program or session
	actionCount
)

var actionNames = [...]string{
	ActionNone:       "None",
	ActionAccept:     "Accept",
	ActionReject:     "Reject",
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionConfirm:    "Confirm",
	ActionBack:       "Back",
	ActionPause:      "Pause",
	ActionRestart:    "Restart",
	ActionScoreboard: "Scoreboard",
	ActionQuit:       "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one platform tick.
// The zero value is an empty frame.
type InputFrame uint32

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return 0
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	*f |= 1 << uint(a)
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f&(1<<uint(a)) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = 0
}
