package snake

// Snapshot captures the complete game state. Tests compare snapshots for
// determinism and the platform logs one when a run ends.
type Snapshot struct {
	Tick        uint64
	Mode        string // "star" or "classic"
	Status      Status
	Score       int
	Best        int
	SnakeLen    int
	Eaten       int
	Moves       int
	HeadX       int
	HeadY       int
	Dir         Direction
	FoodX       int
	FoodY       int
	BonusActive bool
	BonusX      int
	BonusY      int
	IntervalMS  int64
	Cause       Cause
	TooSmall    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.sim.Head()
	food := g.sim.Food()
	bonusPos, _, bonusActive := g.sim.Bonus()

	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Status:      g.status,
		Score:       g.sim.Score(),
		Best:        max(g.best, g.sim.Score()),
		SnakeLen:    g.sim.Len(),
		Eaten:       g.sim.Eaten(),
		Moves:       g.sim.Moves(),
		HeadX:       head.X,
		HeadY:       head.Y,
		Dir:         g.sim.Direction(),
		FoodX:       food.X,
		FoodY:       food.Y,
		BonusActive: bonusActive,
		BonusX:      bonusPos.X,
		BonusY:      bonusPos.Y,
		IntervalMS:  g.sim.Interval().Milliseconds(),
		Cause:       g.sim.Cause(),
		TooSmall:    g.tooSmall,
	}
}
