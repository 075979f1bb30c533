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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/games/neondash"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

// Options configures a game model.
type Options struct {
	Game    config.NeonConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional, runs are not saved when nil
	Audio   neondash.Audio // Optional, silent when nil
	Logger  *log.Logger    // Optional
	Player  string         // Recorded with every run

	// ScreenshotDir receives ctrl+s dumps. Defaults to ~/.neondash/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one Neon Dash game.
type Model struct {
	game       *neondash.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	helpStyle  lipgloss.Style
	config     core.RuntimeConfig
	player     string
	shotDir    string
	lastState  neondash.RunState
	lastRuns   int
	highScore  int
	quitting   bool
	scoreSaved bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model and its game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	defaults := core.DefaultConfig()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = defaults.ScreenW, defaults.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaults.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	game := neondash.New(opts.Game, neondash.Options{
		Audio: opts.Audio,
		Seed:  cfg.Seed,
	})

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:     opts.Store,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		helpStyle: lipgloss.NewStyle().Foreground(neonGray),
		config:    cfg,
		player:    player,
		shotDir:   opts.ScreenshotDir,
		lastState: game.State(),
	}
	m.help.Width = cfg.ScreenW

	if m.store != nil {
		if hs, err := m.store.HighScore(); err == nil {
			m.highScore = hs
		} else {
			logger.Warn("could not load high score", "error", err)
		}
	}
	return m
}

// playHeight leaves the last terminal row for the help line.
func playHeight(h int) int {
	return core.Max(h-1, 0)
}

// Game exposes the running game.
func (m Model) Game() *neondash.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.jump()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.game.Close()
		m.logger.Debug("quit", "score", m.game.Score())
		return m, tea.Quit

	case core.ActionScreenshot:
		m.saveScreenshot()

	case core.ActionJump:
		m.jump()

	case core.ActionConfirm:
		switch m.game.State() {
		case neondash.StateMenu:
			m.control("start", m.game.Start)
		case neondash.StateGameOver:
			m.control("restart", m.game.Restart)
		}

	case core.ActionPause:
		m.control("pause", m.game.TogglePause)

	case core.ActionRestart:
		m.control("restart", m.game.Restart)

	case core.ActionMute:
		m.game.SetMuted(!m.game.Muted())
		m.logger.Debug("mute toggled", "muted", m.game.Muted())
	}

	m.observe()
	return m, nil
}

// jump starts the game from the menu, otherwise it jumps.
func (m *Model) jump() {
	if m.game.State() == neondash.StateMenu {
		m.control("start", m.game.Start)
		m.observe()
		return
	}
	m.game.Jump()
}

// control runs a state transition. Rejected transitions are expected from
// stray keys and only logged at debug level.
func (m *Model) control(name string, fn func() error) {
	if err := fn(); err != nil {
		m.logger.Debug("ignored request", "request", name, "error", err)
	}
}

// handleResize processes window resize events. The world is resolution
// independent, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks. The loop stops once quitting.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.game.Closed() {
		return m, nil
	}

	m.game.Tick()
	m.observe()

	return m, tickCmd(m.config.TickRate)
}

// observe reacts to state changes: a new run resets the save flag, a crash
// saves the run once.
func (m *Model) observe() {
	if runs := m.game.Runs(); runs != m.lastRuns {
		m.lastRuns = runs
		m.scoreSaved = false
	}

	state := m.game.State()
	if state == m.lastState {
		return
	}
	m.logger.Debug("state changed", "from", m.lastState, "to", state)
	m.lastState = state

	if state == neondash.StateGameOver {
		m.saveRun()
	}
}

// saveRun stores the finished run once.
func (m *Model) saveRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	snap := m.game.Snapshot()
	if snap.Score > m.highScore {
		m.highScore = snap.Score
	}
	if m.store == nil || snap.Score <= 0 {
		return
	}

	run := storage.Run{
		Player: m.player,
		Score:  snap.Score,
		Frames: snap.Frame,
		Seed:   m.config.Seed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "score", run.Score, "error", err)
		return
	}
	m.logger.Info("run saved", "player", run.Player, "score", run.Score, "frames", run.Frames)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".neondash", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("neondash_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// render paints the game and the high score into the screen buffer.
func (m Model) render() {
	m.game.Render(m.screen)
	if m.screen.Height() > 0 {
		m.screen.DrawTextCentered(0, fmt.Sprintf(" HI %06d ", m.highScore), core.ColorMagenta)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// HighScore returns the best score known to the model.
func (m Model) HighScore() int {
	return m.highScore
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to jump
	)

	_, err := p.Run()
	model.game.Close()
	return err
}
