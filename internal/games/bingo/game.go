package bingo

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-bingo/internal/config"
	"github.com/vovakirdan/tui-bingo/internal/core"
	"github.com/vovakirdan/tui-bingo/internal/registry"
)

// Variant fixes the mode combination of a registered game.
type Variant string

const (
	VariantClassic Variant = "classic" // lives only
	VariantTimed   Variant = "timed"   // countdown only
	VariantBlitz   Variant = "blitz"   // lives and countdown
)

type variantInfo struct {
	id    string
	title string
	mode  Mode
}

var variants = map[Variant]variantInfo{
	VariantClassic: {id: "bingo", title: "Bingo", mode: Mode{Lives: true}},
	VariantTimed:   {id: "bingo_timed", title: "Bingo (Timed)", mode: Mode{Timer: true}},
	VariantBlitz:   {id: "bingo_blitz", title: "Bingo (Blitz)", mode: Mode{Lives: true, Timer: true}},
}

func init() {
	for _, v := range []Variant{VariantClassic, VariantTimed, VariantBlitz} {
		registry.Register(variants[v].id, func() registry.Game {
			return New(v)
		})
	}
}

// Minimum screen size: ticket box (38x5) plus HUD and controls.
const (
	minWidth  = 40
	minHeight = 15
)

// Game adapts a Round to the platform's tick-driven game interface.
// Its methods may be called from the UI loop and a teardown goroutine.
type Game struct {
	variant Variant

	mu       sync.Mutex
	clock    clockwork.Clock
	logger   *log.Logger
	round    *Round
	err      error // why the last Reset could not start a round
	feedback string
	warnAt   int // remaining seconds below which the clock shows red

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a bingo game for a variant. Unknown variants play classic.
func New(v Variant) *Game {
	if _, ok := variants[v]; !ok {
		v = VariantClassic
	}
	return &Game{
		variant: v,
		clock:   clockwork.NewRealClock(),
		logger:  log.New(io.Discard),
	}
}

// SetClock replaces the clock used by future rounds.
func (g *Game) SetClock(c clockwork.Clock) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if c != nil {
		g.clock = c
	}
}

// SetLogger sets the logger passed to future rounds.
func (g *Game) SetLogger(l *log.Logger) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if l != nil {
		g.logger = l
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return variants[g.variant].id
}

// Title returns the display name.
func (g *Game) Title() string {
	return variants[g.variant].title
}

// Mode returns the loss conditions of this variant.
func (g *Game) Mode() Mode {
	return variants[g.variant].mode
}

// Reset discards the current round and deals a new ticket.
// A custom config file that cannot be loaded leaves the game without a
// round; State reports it as over and Render shows the error.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.closeRound()
	g.err = nil
	g.feedback = ""
	g.resize(cfg.ScreenW, cfg.ScreenH)

	rc, err := g.roundConfig(cfg)
	if err != nil {
		g.err = err
		g.logger.Error("cannot load bingo config", "game", g.ID(), "path", cfg.ConfigPath, "err", err)
		return
	}
	g.warnAt = max(rc.Countdown.LastSeconds, 0)

	round, err := NewRound(rc)
	if err != nil {
		g.err = err
		g.logger.Error("failed to start round", "game", g.ID(), "err", err)
		return
	}
	g.round = round
}

// roundConfig resolves YAML, env and difficulty into a RoundConfig.
// An explicit config path must load; other problems fall back to the defaults.
func (g *Game) roundConfig(cfg core.RuntimeConfig) (RoundConfig, error) {
	bc, err := config.LoadBingo(cfg.ConfigPath)
	switch {
	case err != nil && cfg.ConfigPath != "":
		return RoundConfig{}, err
	case err != nil:
		g.logger.Warn("using default bingo config", "err", err)
		bc = config.DefaultBingoConfig()
	}

	preset, err := config.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		g.logger.Warn("ignoring difficulty", "err", err)
		preset = config.DifficultyNormal
	}
	config.ApplyBingoPreset(&bc, preset)

	seed := cfg.Seed
	if seed == 0 {
		seed = g.clock.Now().UnixNano()
	}

	return RoundConfig{
		Mode:  g.Mode(),
		Lives: bc.Round.Lives,
		Countdown: CountdownConfig{
			Seconds:     bc.Timer.Seconds,
			LastSeconds: noneIfZero(bc.Timer.LastSeconds),
			Interval:    bc.Timer.Interval(),
		},
		TimeBonus:   noneIfZero(bc.Timer.Bonus),
		TimePenalty: noneIfZero(bc.Timer.Penalty),
		Scoring: Scoring{
			MarkPoints:   bc.Scoring.MarkPoints,
			RejectPoints: bc.Scoring.RejectPoints,
			WinBonus:     bc.Scoring.WinBonus,
			LifeBonus:    bc.Scoring.LifeBonus,
			SecondBonus:  bc.Scoring.SecondBonus,
		},
		Clock:  g.clock,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: g.logger,
	}, nil
}

// noneIfZero maps the YAML convention (0 = off) onto the one RoundConfig and
// CountdownConfig use (0 = default, negative = none).
func noneIfZero(n int) int {
	if n == 0 {
		return -1
	}
	return n
}

// Resize records the screen size without touching the round.
func (g *Game) Resize(w, h int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resize(w, h)
}

func (g *Game) resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// Step applies the actions of one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil || g.tooSmall {
		return core.StepResult{State: g.state()}
	}

	if in.Has(core.ActionPause) {
		if g.round.Snapshot().Paused {
			g.round.Resume()
			g.feedback = ""
		} else {
			g.round.Pause()
		}
		return core.StepResult{State: g.state()}
	}

	// One call per tick; accept wins if both keys landed together.
	switch {
	case in.Has(core.ActionAccept):
		g.call(true)
	case in.Has(core.ActionReject):
		g.call(false)
	}

	return core.StepResult{State: g.state()}
}

// call accepts or rejects the current number and sets the feedback line.
func (g *Game) call(accept bool) {
	before := g.round.Snapshot()

	var err error
	if accept {
		err = g.round.Accept()
	} else {
		err = g.round.Reject()
	}
	switch {
	case errors.Is(err, ErrPaused):
		g.feedback = "Paused"
		return
	case err != nil:
		return
	}

	after := g.round.Snapshot()
	switch {
	case after.Mistakes > before.Mistakes && accept:
		g.feedback = fmt.Sprintf("%d is not on your ticket", before.Current)
	case after.Mistakes > before.Mistakes:
		g.feedback = fmt.Sprintf("Missed %d, it was on your ticket", before.Current)
	case accept:
		g.feedback = fmt.Sprintf("Marked %d", before.Current)
	default:
		g.feedback = fmt.Sprintf("Passed on %d", before.Current)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() core.GameState {
	if g.round == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	snap := g.round.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		GameOver: snap.IsOver(),
		Won:      snap.State == StateWon,
		Paused:   snap.Paused || g.tooSmall,
	}
}

// Snapshot returns a copy of the current round, if one is running.
func (g *Game) Snapshot() (Snapshot, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() (Snapshot, bool) {
	if g.round == nil {
		return Snapshot{}, false
	}
	return g.round.Snapshot(), true
}

// Report summarises a finished round for the score store.
func (g *Game) Report() (registry.Report, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap, ok := g.snapshot()
	if !ok || !snap.IsOver() {
		return registry.Report{}, false
	}
	return registry.Report{
		RoundID:     snap.ID.String(),
		Result:      string(snap.Result()),
		Reason:      string(snap.Reason),
		Score:       snap.Score,
		Marked:      snap.Ticket.MarkedCount(),
		Called:      len(snap.Called),
		LivesLeft:   snap.Lives,
		SecondsLeft: max(snap.Remaining, 0),
		Duration:    snap.Duration(),
	}, true
}

// Close stops the running round.
func (g *Game) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closeRound()
	return nil
}

func (g *Game) closeRound() {
	if g.round != nil {
		_ = g.round.Close()
		g.round = nil
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "A/Space: On ticket | X/N: Not on ticket | P: Pause | R: Restart | Q: Quit"
}
