package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// helpHeight is the number of rows kept below the game for the help bar.
const helpHeight = 1

// Options describe who is playing and how.
type Options struct {
	Player string      // Recorded with saved runs
	Preset string      // Speed preset, recorded with saved runs
	Logger *log.Logger // Receives engine faults; discarded when nil
}

// runStats is implemented by games that report more than a score.
type runStats interface {
	Crossings() int
	Deaths() int
}

// bestKeeper is implemented by games that show the stored high score.
type bestKeeper interface {
	SetBest(score int)
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	err        error
	quitting   bool
	runSaved   bool // Whether the current run has been written to the store
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// playHeight leaves room for the help bar.
func playHeight(screenH int) int {
	return max(screenH-helpHeight, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	// gameState is set on the first tick (value receiver)

	return tickCmd(m.config.TickRate)
}

// resetGame starts a new run and hands the game the stored high score.
func (m Model) resetGame() {
	m.game.Reset(m.config)

	bk, ok := m.game.(bestKeeper)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "game", m.game.ID(), "error", err)
		return
	}
	bk.SetBest(best)
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

// handleKey processes keyboard input. Hops are queued until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize only resizes the screen buffer; the world is in its own
// units and keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.resetGame()
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Err != nil {
		m.logger.Error("engine fault", "game", m.game.ID(), "player", m.opts.Player, "error", result.Err)
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun writes the current run to the store once. Empty runs are skipped.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Preset: m.opts.Preset,
		Score:  m.gameState.Score,
	}
	if rs, ok := m.game.(runStats); ok {
		run.Crossings = rs.Crossings()
		run.Deaths = rs.Deaths()
	}
	if run.Score == 0 && run.Crossings == 0 {
		return
	}

	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "game", run.GameID, "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".frogger", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Err returns the engine fault that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with the given model and returns the
// engine fault that ended it, if any.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return fmt.Errorf("tui: %s stopped: %w", game.ID(), m.err)
	}
	return nil
}
