package bingo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-bingo/internal/core"
	"github.com/vovakirdan/tui-bingo/internal/registry"
)

func newTestGame(t *testing.T, v Variant, cfg core.RuntimeConfig) (*Game, *clockwork.FakeClock) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	clock := clockwork.NewFakeClock()
	g := New(v)
	g.SetClock(clock)
	if cfg.ScreenW == 0 {
		cfg.ScreenW, cfg.ScreenH = 80, 24
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	g.Reset(cfg)
	t.Cleanup(func() { _ = g.Close() })
	return g, clock
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
		mode  Mode
	}{
		{"bingo", "Bingo", Mode{Lives: true}},
		{"bingo_timed", "Bingo (Timed)", Mode{Timer: true}},
		{"bingo_blitz", "Bingo (Blitz)", Mode{Lives: true, Timer: true}},
	}
	for _, tc := range tests {
		g, err := registry.Create(tc.id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", tc.id, err)
		}
		bg, ok := g.(*Game)
		if !ok {
			t.Fatalf("Create(%q) returned %T", tc.id, g)
		}
		if bg.ID() != tc.id || bg.Title() != tc.title || bg.Mode() != tc.mode {
			t.Errorf("%s: ID=%q Title=%q Mode=%s", tc.id, bg.ID(), bg.Title(), bg.Mode())
		}
	}
}

func TestGameImplementsPlatformHooks(t *testing.T) {
	var g any = New(VariantClassic)
	if _, ok := g.(registry.Resizer); !ok {
		t.Error("Game should implement registry.Resizer")
	}
	if _, ok := g.(registry.Reporter); !ok {
		t.Error("Game should implement registry.Reporter")
	}
}

func TestGameResetSameSeed(t *testing.T) {
	a, _ := newTestGame(t, VariantClassic, core.RuntimeConfig{Seed: 99})
	b, _ := newTestGame(t, VariantClassic, core.RuntimeConfig{Seed: 99})

	sa, _ := a.Snapshot()
	sb, _ := b.Snapshot()
	if sa.Ticket.String() != sb.Ticket.String() || sa.Current != sb.Current {
		t.Error("same seed should deal the same round")
	}
}

func TestGameStepAcceptAndReject(t *testing.T) {
	g, _ := newTestGame(t, VariantClassic, core.RuntimeConfig{})

	g.Step(frame(core.ActionAccept))
	snap, _ := g.Snapshot()
	if len(snap.Called) != 1 {
		t.Fatalf("Called = %v after one accept", snap.Called)
	}
	if g.feedback == "" {
		t.Error("feedback should describe the call")
	}

	g.Step(frame(core.ActionReject))
	snap, _ = g.Snapshot()
	if len(snap.Called) != 2 {
		t.Errorf("Called = %v after accept and reject", snap.Called)
	}

	g.Step(core.NewInputFrame())
	snap, _ = g.Snapshot()
	if len(snap.Called) != 2 {
		t.Error("empty frame should not call a number")
	}
}

func TestGamePauseToggle(t *testing.T) {
	g, _ := newTestGame(t, VariantTimed, core.RuntimeConfig{})

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("Pause should pause the round")
	}
	g.Step(frame(core.ActionAccept))
	if snap, _ := g.Snapshot(); len(snap.Called) != 0 {
		t.Error("paused game accepted a number")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("second Pause should resume")
	}
}

func TestGameTooSmall(t *testing.T) {
	g, _ := newTestGame(t, VariantClassic, core.RuntimeConfig{ScreenW: 30, ScreenH: 10})

	if !g.State().Paused {
		t.Error("too small window should report paused")
	}
	g.Step(frame(core.ActionAccept))
	if snap, _ := g.Snapshot(); len(snap.Called) != 0 {
		t.Error("too small window should ignore input")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("render:\n%s", screen.String())
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("Resize() to a large window should unpause")
	}
	if snap, ok := g.Snapshot(); !ok || len(snap.Called) != 0 {
		t.Error("Resize() must not restart the round")
	}
}

func TestGamePlaysToReport(t *testing.T) {
	g, _ := newTestGame(t, VariantClassic, core.RuntimeConfig{})

	if _, ok := g.Report(); ok {
		t.Fatal("Report() should be empty while the round runs")
	}
	for i := 0; i < MaxNumber && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionReject))
	}

	state := g.State()
	if !state.GameOver || state.Won {
		t.Fatalf("rejecting everything should lose, got %+v", state)
	}
	rep, ok := g.Report()
	if !ok {
		t.Fatal("Report() missing after game over")
	}
	if rep.Result != string(ResultLose) || rep.Reason != string(ReasonLivesExhausted) {
		t.Errorf("Report() = %+v", rep)
	}
	if rep.RoundID == "" || rep.Called == 0 || rep.LivesLeft != 0 {
		t.Errorf("Report() = %+v", rep)
	}
}

func TestGameConfigAndDifficulty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bingo.yaml")
	if err := os.WriteFile(path, []byte("round:\n  lives: 1\ntimer:\n  seconds: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	g, _ := newTestGame(t, VariantBlitz, core.RuntimeConfig{ConfigPath: path})
	snap, _ := g.Snapshot()
	if snap.Lives != 1 || snap.Remaining != 20 {
		t.Errorf("custom config: Lives = %d, Remaining = %d", snap.Lives, snap.Remaining)
	}

	g, _ = newTestGame(t, VariantClassic, core.RuntimeConfig{Difficulty: "easy"})
	if snap, _ := g.Snapshot(); snap.Lives != 5 {
		t.Errorf("easy Lives = %d, want 5", snap.Lives)
	}

	g, _ = newTestGame(t, VariantClassic, core.RuntimeConfig{Difficulty: "impossible"})
	if snap, _ := g.Snapshot(); snap.Lives != 3 {
		t.Errorf("unknown difficulty Lives = %d, want 3", snap.Lives)
	}
}

func TestGameBadConfigPathStopsRound(t *testing.T) {
	broken := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(broken, []byte("round: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(t.TempDir(), "missing.yaml")},
		{"unparseable", broken},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, VariantClassic, core.RuntimeConfig{ConfigPath: tc.path})
			if _, ok := g.Snapshot(); ok {
				t.Fatal("a bad config path should not start a round")
			}
			if !g.State().GameOver {
				t.Error("State should report the game as over")
			}
			if _, ok := g.Report(); ok {
				t.Error("nothing should be reported without a round")
			}

			screen := core.NewScreen(80, 24)
			g.Render(screen)
			if !strings.Contains(screen.String(), "Could not start a round") {
				t.Errorf("render should show the config error:\n%s", screen.String())
			}
		})
	}
}

func TestGameZeroTimeAdjustmentsAreOff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bingo.yaml")
	if err := os.WriteFile(path, []byte("timer:\n  bonus: 0\n  penalty: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	g, _ := newTestGame(t, VariantTimed, core.RuntimeConfig{ConfigPath: path})
	if g.round == nil {
		t.Fatal("round should start")
	}
	if g.round.cfg.TimeBonus >= 0 || g.round.cfg.TimePenalty >= 0 {
		t.Errorf("TimeBonus = %d, TimePenalty = %d, want both off",
			g.round.cfg.TimeBonus, g.round.cfg.TimePenalty)
	}

	before := g.round.Snapshot().Remaining
	g.Step(frame(core.ActionReject))
	g.Step(frame(core.ActionAccept))
	if got := g.round.Snapshot().Remaining; got != before {
		t.Errorf("Remaining = %d, want %d with adjustments off", got, before)
	}
}

func TestGameCloseDuringPlay(t *testing.T) {
	g, _ := newTestGame(t, VariantBlitz, core.RuntimeConfig{})
	screen := core.NewScreen(80, 24)

	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(5 * time.Millisecond)
		_ = g.Close()
	}()

	deadline := time.Now().Add(50 * time.Millisecond)
	for time.Now().Before(deadline) {
		g.Step(frame(core.ActionReject))
		g.State()
		g.Render(screen)
		g.Report()
	}
	<-done

	if _, ok := g.Snapshot(); ok {
		t.Error("Close() should drop the round")
	}
}

func TestGameTimedRoundEnds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bingo.yaml")
	if err := os.WriteFile(path, []byte("timer:\n  seconds: 1\n  last_seconds: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	g, clock := newTestGame(t, VariantTimed, core.RuntimeConfig{ConfigPath: path})

	waitForTicker(t, clock, 1)
	clock.Advance(time.Second)

	deadline := time.Now().Add(2 * time.Second)
	for !g.State().GameOver {
		if time.Now().After(deadline) {
			t.Fatal("timed round did not end")
		}
		clock.Advance(time.Second)
		time.Sleep(5 * time.Millisecond)
	}
	rep, _ := g.Report()
	if rep.Reason != string(ReasonTimeUp) {
		t.Errorf("Reason = %q, want time_up", rep.Reason)
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(t, VariantBlitz, core.RuntimeConfig{})
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Bingo (Blitz)", "Lives: ♥♥♥", "Time: 01:00", "Called: none"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	snap, _ := g.Snapshot()
	for _, n := range snap.Ticket.RowNumbers(0) {
		if !strings.Contains(out, fmt.Sprintf(" %2d ", n)) {
			t.Errorf("render missing ticket number %d", n)
		}
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused render should show the overlay")
	}
}

func TestGameCloseStopsRound(t *testing.T) {
	g, _ := newTestGame(t, VariantTimed, core.RuntimeConfig{})
	if err := g.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.Snapshot(); ok {
		t.Error("Close() should drop the round")
	}
	if err := g.Close(); err != nil {
		t.Error("second Close() should be a no-op")
	}
}
