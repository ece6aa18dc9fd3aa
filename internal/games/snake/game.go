// Package snake implements the snake game: a pure grid simulation (Sim)
// and the Game adapter that paces it, maps input and renders it.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/star-snake/internal/config"
	"github.com/vovakirdan/star-snake/internal/core"
	"github.com/vovakirdan/star-snake/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeStar    Mode = "star"    // food plus bonus stars
	ModeClassic Mode = "classic" // food only
)

// Status is the phase of the game session.
type Status int

const (
	StatusReady   Status = iota // start screen
	StatusRunning               // snake is moving
	StatusPaused                // run suspended
	StatusOver                  // run ended, waiting for restart
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "game_over"
	default:
		return "unknown"
	}
}

const hudHeight = 2

// Game implements the snake game for the platform.
type Game struct {
	mode   Mode
	rules  Rules
	rng    *rand.Rand
	sim    *Sim
	status Status

	tick     uint64
	tickDur  time.Duration
	elapsed  time.Duration // time accumulated toward the next move
	best     int
	newBest  bool
	stars    []Point // backdrop, in board cells
	lastMove core.Outcome

	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level config, set by the CLI before games are created.
var gameConfig = config.DefaultSnakeConfig()

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.SnakeConfig) {
	gameConfig = cfg
}

// New creates a snake game with bonus stars.
func New() *Game {
	return newGame(ModeStar, gameConfig)
}

// NewClassic creates a snake game with food only.
func NewClassic() *Game {
	return newGame(ModeClassic, gameConfig)
}

func newGame(mode Mode, cfg config.SnakeConfig) *Game {
	if mode == ModeClassic {
		cfg.Bonus.Enabled = false
	}
	return &Game{
		mode:  mode,
		rules: RulesFromConfig(cfg),
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "snake_classic"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Snake (Classic)"
	}
	return "Star Snake"
}

// Reset initializes the game and shows the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.elapsed = 0
	g.best = cfg.HighScore
	g.newBest = false
	g.lastMove = core.OutcomeContinue
	g.status = StatusReady

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDur = time.Second / time.Duration(tickRate)

	g.sim = NewSim(g.rules, g.rng.Int63())
	g.stars = g.makeStars()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to new screen dimensions without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	reqW, reqH := g.RequiredSize()
	g.tooSmall = w < reqW || h < reqH
}

// RequiredSize returns the smallest screen that fits the board and HUD.
func (g *Game) RequiredSize() (int, int) {
	return g.rules.Width + 2, g.rules.Height + 2 + hudHeight
}

// makeStars scatters backdrop stars over roughly one cell in 24.
func (g *Game) makeStars() []Point {
	n := g.rules.Width * g.rules.Height / 24
	stars := make([]Point, n)
	for i := range stars {
		stars[i] = Point{X: g.rng.Intn(g.rules.Width), Y: g.rng.Intn(g.rules.Height)}
	}
	return stars
}

// startRun begins a fresh run with a new snake.
func (g *Game) startRun() {
	g.sim = NewSim(g.rules, g.rng.Int63())
	g.elapsed = 0
	g.newBest = false
	g.lastMove = core.OutcomeContinue
	g.status = StatusRunning
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range input.Actions {
		g.handleAction(a)
	}

	if g.status != StatusRunning || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.elapsed += g.tickDur
	return g.advance()
}

// advance spends the accumulated tick time on moves. A slow tick can pay for
// several moves; the interval is re-read after each one since eating may
// speed the snake up. The reported outcome is the most significant one.
func (g *Game) advance() core.StepResult {
	res := core.StepResult{}
	for g.status == StatusRunning {
		interval := g.sim.Interval()
		if g.elapsed < interval {
			break
		}
		g.elapsed -= interval

		outcome := g.sim.Advance()
		g.lastMove = outcome
		res.Moved = true
		res.Outcome = max(res.Outcome, outcome)
		if score := g.sim.Score(); score > g.best {
			g.best = score
			g.newBest = true
		}
		if outcome == core.OutcomeGameOver {
			g.status = StatusOver
			g.elapsed = 0
		}
	}
	res.State = g.State()
	return res
}

// handleAction applies one input action to the session.
func (g *Game) handleAction(a core.Action) {
	switch a {
	case core.ActionStart:
		switch g.status {
		case StatusReady, StatusOver:
			g.startRun()
		case StatusRunning:
			g.status = StatusPaused
		case StatusPaused:
			g.status = StatusRunning
		}
	case core.ActionPause:
		switch g.status {
		case StatusRunning:
			g.status = StatusPaused
		case StatusPaused:
			g.status = StatusRunning
		}
	case core.ActionBack:
		switch g.status {
		case StatusRunning:
			g.status = StatusPaused
		case StatusPaused, StatusOver:
			g.sim = NewSim(g.rules, g.rng.Int63())
			g.status = StatusReady
		}
	case core.ActionRestart:
		if g.status == StatusOver {
			g.startRun()
		}
	default:
		if a.IsMove() && g.status == StatusRunning {
			d, _ := DirectionFor(a)
			g.sim.Turn(d)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.sim != nil {
		score = g.sim.Score()
	}
	return core.GameState{
		Score:     score,
		HighScore: max(g.best, score),
		GameOver:  g.status == StatusOver,
		Paused:    g.status == StatusPaused,
		Running:   g.status != StatusReady,
	}
}

// Summary describes the current run for logging.
func (g *Game) Summary() []any {
	snap := g.Snapshot()
	return []any{
		"mode", snap.Mode,
		"cause", snap.Cause.String(),
		"length", snap.SnakeLen,
		"foods", snap.Eaten,
		"moves", snap.Moves,
		"interval_ms", snap.IntervalMS,
	}
}
