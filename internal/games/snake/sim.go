package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/star-snake/internal/config"
	"github.com/vovakirdan/star-snake/internal/core"
)

// Cause explains why a run ended.
type Cause int

const (
	CauseNone        Cause = iota
	CauseWall              // head left the board
	CauseSelf              // head ran into the body
	CauseBoardFilled       // no free cell left for food
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFilled:
		return "board_filled"
	default:
		return "none"
	}
}

// Rules are the fixed parameters of a simulation.
type Rules struct {
	Width, Height int
	Start         Point
	FoodPoints    int
	BonusPoints   int
	BonusEnabled  bool
	BonusEvery    int // foods eaten between bonus spawns
	BonusLifetime int // moves a bonus stays on the board
	Speed         config.SpeedSchedule
}

// RulesFromConfig builds simulation rules from the game configuration.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		Width:         cfg.Board.Width,
		Height:        cfg.Board.Height,
		Start:         Point{X: cfg.Board.StartX, Y: cfg.Board.StartY},
		FoodPoints:    cfg.Scoring.FoodPoints,
		BonusPoints:   cfg.Scoring.BonusPoints,
		BonusEnabled:  cfg.Bonus.Enabled,
		BonusEvery:    cfg.Bonus.EveryFoods,
		BonusLifetime: cfg.Bonus.Lifetime,
		Speed:         config.NewSpeedSchedule(cfg.Speed),
	}
}

// bonus is a short-lived item worth extra points.
type bonus struct {
	pos       Point
	remaining int // moves left before it disappears
}

// Sim is the snake simulation: body, direction, food and bonus, score and speed.
// It advances one cell per Advance call and knows nothing about wall-clock time.
type Sim struct {
	rules Rules
	rng   *rand.Rand

	body    []Point // Head at index 0
	dir     Direction
	pending Direction // Applied on the next move

	food  Point
	bonus *bonus

	score int
	eaten int
	moves int
	over  bool
	cause Cause
	crash Point
}

// NewSim starts a simulation with a one-segment snake on the start cell,
// heading right, with food on a random free cell.
func NewSim(rules Rules, seed int64) *Sim {
	s := &Sim{
		rules:   rules,
		rng:     rand.New(rand.NewSource(seed)),
		body:    []Point{rules.Start},
		dir:     DirRight,
		pending: DirRight,
	}
	if !s.placeFood() {
		s.finish(CauseBoardFilled, rules.Start)
	}
	return s
}

// Turn requests a new direction for the next move.
// The request is ignored unless it changes axis relative to the direction
// of the last move, so the snake can never reverse into itself.
func (s *Sim) Turn(d Direction) bool {
	if s.over || !s.dir.CanTurn(d) {
		return false
	}
	s.pending = d
	return true
}

// Advance moves the snake one cell and reports what happened.
func (s *Sim) Advance() core.Outcome {
	if s.over {
		return core.OutcomeGameOver
	}

	s.dir = s.pending
	head := s.Head().Step(s.dir)

	if !s.InBounds(head) {
		s.finish(CauseWall, head)
		return core.OutcomeGameOver
	}
	if s.Occupies(head) {
		s.finish(CauseSelf, head)
		return core.OutcomeGameOver
	}

	s.body = append([]Point{head}, s.body...)
	s.moves++

	outcome := core.OutcomeContinue
	switch {
	case head == s.food:
		s.score += s.rules.FoodPoints
		s.eaten++
		if !s.placeFood() {
			s.finish(CauseBoardFilled, head)
			return core.OutcomeGameOver
		}
		outcome = core.OutcomeAteFood
	case s.bonus != nil && head == s.bonus.pos:
		s.score += s.rules.BonusPoints
		s.bonus = nil
		s.dropTail()
		outcome = core.OutcomeAteBonus
	default:
		s.dropTail()
	}

	s.updateBonus(outcome)
	return outcome
}

func (s *Sim) dropTail() {
	s.body = s.body[:len(s.body)-1]
}

func (s *Sim) finish(cause Cause, at Point) {
	s.over = true
	s.cause = cause
	s.crash = at
}

// updateBonus ages an active bonus and spawns a new one every BonusEvery foods.
func (s *Sim) updateBonus(outcome core.Outcome) {
	if s.bonus != nil {
		s.bonus.remaining--
		if s.bonus.remaining <= 0 {
			s.bonus = nil
		}
	}

	if !s.rules.BonusEnabled || s.rules.BonusEvery <= 0 || s.bonus != nil {
		return
	}
	if outcome != core.OutcomeAteFood || s.eaten%s.rules.BonusEvery != 0 {
		return
	}

	free := s.freeCells(func(p Point) bool { return p == s.food })
	if len(free) == 0 {
		return
	}
	s.bonus = &bonus{
		pos:       free[s.rng.Intn(len(free))],
		remaining: s.rules.BonusLifetime,
	}
}

// placeFood puts food on a random cell not occupied by the snake or bonus.
// When only the bonus cell is left, the bonus gives way. Returns false
// when the snake covers the whole board.
func (s *Sim) placeFood() bool {
	free := s.freeCells(func(p Point) bool { return s.bonus != nil && p == s.bonus.pos })
	if len(free) == 0 && s.bonus != nil {
		s.bonus = nil
		free = s.freeCells(nil)
	}
	if len(free) == 0 {
		s.food = Point{X: -1, Y: -1}
		return false
	}
	s.food = free[s.rng.Intn(len(free))]
	return true
}

// freeCells lists board cells not covered by the snake nor rejected by skip.
func (s *Sim) freeCells(skip func(Point) bool) []Point {
	occupied := make(map[Point]bool, len(s.body))
	for _, seg := range s.body {
		occupied[seg] = true
	}

	cells := make([]Point, 0, max(s.rules.Width*s.rules.Height-len(s.body), 0))
	for y := 0; y < s.rules.Height; y++ {
		for x := 0; x < s.rules.Width; x++ {
			p := Point{X: x, Y: y}
			if occupied[p] || (skip != nil && skip(p)) {
				continue
			}
			cells = append(cells, p)
		}
	}
	return cells
}

// InBounds reports whether p lies on the board.
func (s *Sim) InBounds(p Point) bool {
	return core.NewRect(0, 0, s.rules.Width, s.rules.Height).Contains(p.X, p.Y)
}

// Occupies reports whether any body segment covers p.
func (s *Sim) Occupies(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Interval returns the time until the next move at the current score.
func (s *Sim) Interval() time.Duration {
	return s.rules.Speed.Interval(s.score)
}

// SpeedLevel returns the 1-based speed level at the current score.
func (s *Sim) SpeedLevel() int {
	return s.rules.Speed.Level(s.score)
}

// AtTopSpeed reports whether the schedule has reached its shortest interval.
// A fixed schedule never speeds up, so it is never at top speed.
func (s *Sim) AtTopSpeed() bool {
	floor := s.rules.Speed.Floor()
	return floor < s.rules.Speed.Base() && s.Interval() == floor
}

// Body returns a copy of the body, head first.
func (s *Sim) Body() []Point {
	return append([]Point(nil), s.body...)
}

// Head returns the head cell.
func (s *Sim) Head() Point {
	return s.body[0]
}

// Len returns the number of body segments.
func (s *Sim) Len() int {
	return len(s.body)
}

// Direction returns the direction of the last move.
func (s *Sim) Direction() Direction {
	return s.dir
}

// Food returns the food cell, or (-1, -1) when the board is full.
func (s *Sim) Food() Point {
	return s.food
}

// Bonus returns the bonus cell and its remaining moves, if one is active.
func (s *Sim) Bonus() (Point, int, bool) {
	if s.bonus == nil {
		return Point{}, 0, false
	}
	return s.bonus.pos, s.bonus.remaining, true
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.score
}

// Eaten returns the number of food items eaten.
func (s *Sim) Eaten() int {
	return s.eaten
}

// Moves returns the number of completed moves.
func (s *Sim) Moves() int {
	return s.moves
}

// Over reports whether the run has ended.
func (s *Sim) Over() bool {
	return s.over
}

// Cause returns why the run ended, or CauseNone.
func (s *Sim) Cause() Cause {
	return s.cause
}

// Crash returns the cell the head tried to enter on game over.
func (s *Sim) Crash() Point {
	return s.crash
}
