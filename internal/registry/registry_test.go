package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bingo/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

// register adds a game for the duration of one test.
func register(t *testing.T, id, title string) {
	t.Helper()
	Register(id, func() Game { return &stubGame{id: id, title: title} })
	t.Cleanup(func() {
		mu.Lock()
		delete(factories, id)
		delete(titles, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "stub_b", "Stub B")
	register(t, "stub_a", "Stub A")

	if !Exists("stub_a") || !Exists("stub_b") {
		t.Fatal("registered games should exist")
	}
	if Exists("stub_missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("stub_missing"); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create() of unknown game error = %v", err)
	}
}

func TestListSortedWithTitles(t *testing.T) {
	register(t, "stub_list_2", "Two")
	register(t, "stub_list_1", "One")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	titles := make(map[string]string, len(list))
	for _, info := range list {
		titles[info.ID] = info.Title
	}
	if titles["stub_list_1"] != "One" || titles["stub_list_2"] != "Two" {
		t.Errorf("titles not recorded: %v", titles)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "stub_dup", "")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestRegisterCleanupAllowsReuse(t *testing.T) {
	t.Run("first", func(t *testing.T) { register(t, "stub_again", "Again") })
	if Exists("stub_again") {
		t.Fatal("game should be removed after its test")
	}
	t.Run("second", func(t *testing.T) { register(t, "stub_again", "Again") })
}
