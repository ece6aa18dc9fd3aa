package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-snake/internal/audio"
	"github.com/vovakirdan/star-snake/internal/config"
	"github.com/vovakirdan/star-snake/internal/core"
	"github.com/vovakirdan/star-snake/internal/registry"
	"github.com/vovakirdan/star-snake/internal/storage"
)

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Summarizer is implemented by games that can describe a finished run
// as key/value pairs for the log.
type Summarizer interface {
	Summary() []any
}

// Options carries the platform services a game session uses.
// Every field is optional.
type Options struct {
	Store  *storage.Store
	Audio  audio.Player
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	player     audio.Player
	logger     *log.Logger
	keys       GameKeyMap
	swipe      swipeTracker
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the score of the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// The stored best score for the game is passed on through cfg.HighScore.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	if opts.Store != nil {
		best, err := opts.Store.BestScore(game.ID())
		if err != nil {
			opts.Logger.Warn("cannot load best score", "game", game.ID(), "err", err)
		}
		cfg.HighScore = max(cfg.HighScore, best)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		player:     opts.Audio,
		logger:     opts.Logger,
		keys:       DefaultGameKeyMap(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.Set(m.swipe.handle(msg))
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
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.recordScore(m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.Running {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// A run abandoned from the pause screen still counts.
	if prev.Running && !prev.GameOver && !m.gameState.Running {
		m.recordScore(prev.Score)
	}

	// A new run started: from the start screen or after game over.
	if m.gameState.Running && !m.gameState.GameOver && (!prev.Running || prev.GameOver) {
		m.scoreSaved = false
		m.logger.Info("run started", "game", m.game.ID(), "best", m.gameState.HighScore)
	}

	if result.Moved {
		switch result.Outcome {
		case core.OutcomeAteFood, core.OutcomeAteBonus:
			m.player.Play(audio.EffectEat)
		case core.OutcomeGameOver:
			m.player.Play(audio.EffectGameOver)
			fields := []any{"game", m.game.ID(), "score", m.gameState.Score}
			if s, ok := m.game.(Summarizer); ok {
				fields = append(fields, s.Summary()...)
			}
			m.logger.Info("game over", fields...)
			m.recordScore(m.gameState.Score)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore stores the score of the current run once.
func (m *Model) recordScore(score int) {
	if m.scoreSaved || score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	newBest, err := m.store.RecordScore(m.game.ID(), score)
	if err != nil {
		m.logger.Warn("cannot save score", "game", m.game.ID(), "err", err)
		return
	}
	if newBest {
		m.logger.Info("new best score", "game", m.game.ID(), "score", score)
	}
}

// saveScreenshot writes the current screen as plain text under
// ~/.starsnake/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if dir == "" {
		return "", fmt.Errorf("tui: no home directory for screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game and returns when
// the player quits.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks and drags for swipes
	)

	_, err := p.Run()
	return err
}
