package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Platform ticks per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
	HighScore int   // Best score known to the platform for this game
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score including the current run
	GameOver  bool // Whether the current run has ended
	Paused    bool // Whether the game is paused
	Running   bool // Whether a run is in progress (not on the start screen)
}

// Outcome reports what a simulation move did.
type Outcome int

const (
	OutcomeContinue Outcome = iota // moved without eating
	OutcomeAteFood                 // ate food and grew
	OutcomeAteBonus                // ate a bonus item
	OutcomeGameOver                // hit a wall or itself
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeAteFood:
		return "ate-food"
	case OutcomeAteBonus:
		return "ate-bonus"
	case OutcomeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each platform tick.
// Moved reports whether the simulation advanced during this tick; Outcome
// is only meaningful when Moved is true.
type StepResult struct {
	State   GameState
	Moved   bool
	Outcome Outcome
}
