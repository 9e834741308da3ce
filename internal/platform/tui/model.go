package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bingo/internal/core"
	"github.com/vovakirdan/tui-bingo/internal/registry"
	"github.com/vovakirdan/tui-bingo/internal/storage"
)

// loggerSetter is implemented by games that accept a logger.
type loggerSetter interface {
	SetLogger(*log.Logger)
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	allowBack  bool // B/Esc returns to the menu instead of doing nothing
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the current game over has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables score keeping; a nil logger discards logs.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if ls, ok := game.(loggerSetter); ok {
		ls.SetLogger(logger)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// WithBackToMenu lets B/Esc leave the game when it is paused or over.
func (m Model) WithBackToMenu() Model {
	m.allowBack = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is picked up on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.closeGame()
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			m.closeGame()
			return m, tea.Quit
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can follow a resize keep their round; others restart.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.recorded {
		m.record()
		m.recorded = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record stores a finished game. Failures are logged and play continues.
func (m Model) record() {
	if m.store == nil {
		return
	}

	if rep, ok := m.game.(registry.Reporter); ok {
		r, ok := rep.Report()
		if !ok {
			return
		}
		saved, err := m.store.SaveRound(storage.RoundRecord{
			RoundID:     r.RoundID,
			GameID:      m.game.ID(),
			Result:      r.Result,
			Reason:      r.Reason,
			Score:       r.Score,
			Marked:      r.Marked,
			Called:      r.Called,
			LivesLeft:   r.LivesLeft,
			SecondsLeft: r.SecondsLeft,
			Duration:    r.Duration,
		})
		if err != nil {
			m.logger.Warn("could not save round", "game", m.game.ID(), "error", err)
			return
		}
		if saved {
			m.logger.Debug("round saved", "game", m.game.ID(), "round", r.RoundID, "score", r.Score)
		}
		return
	}

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}
}

// closeGame releases resources held by the game, such as a running countdown.
func (m Model) closeGame() {
	if c, ok := m.game.(io.Closer); ok {
		if err := c.Close(); err != nil {
			m.logger.Warn("could not close game", "game", m.game.ID(), "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	_, err := run(NewModel(game, store, cfg, logger))
	return err
}

// RunWithMenu runs a game that B/Esc can leave once it is paused or over.
// Returns true if the user went back to the menu, false if they quit.
func RunWithMenu(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (goBack bool, err error) {
	m, err := run(NewModel(game, store, cfg, logger).WithBackToMenu())
	return m.BackToMenu(), err
}

func run(model Model) (Model, error) {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	m, ok := final.(Model)
	if !ok {
		m = model
	}
	m.closeGame()
	return m, err
}
