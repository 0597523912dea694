package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"ringrush/internal/core"
	"ringrush/internal/registry"
)

// Model is the Bubble Tea model for running arcade games.
// The bottom terminal line is reserved for the key help footer; the game
// draws into the remaining rows.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	overLogged bool // game-over has been logged for this round
}

// NewModel creates a new Bubble Tea model for the given game.
// The game must already have been Reset by the caller.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// gameHeight returns the number of rows available to the game after
// reserving the help footer line.
func gameHeight(screenH int) int {
	return core.Max(1, screenH-1)
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

	case tea.WindowSizeMsg:
		// The simulation is screen-independent; only the buffer resizes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameHeight(msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.Map(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prevScore := m.gameState.Score

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Score != prevScore {
		m.logger.Debug("score", "game", m.game.ID(), "score", m.gameState.Score)
	}
	if m.gameState.GameOver && !m.overLogged {
		m.logger.Info("game over", "game", m.game.ID(), "final_score", m.gameState.Score)
		m.overLogged = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + renderHelp(m.keys)
}

// Run initializes the game and starts the Bubble Tea program.
// A Reset error (e.g., degenerate geometry from a bad config) aborts before
// the terminal is taken over.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}

	logger.Debug("starting game", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate)

	model := NewModel(game, cfg, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
