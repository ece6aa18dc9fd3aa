package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/star-snake/internal/config"
	"github.com/vovakirdan/star-snake/internal/core"
	"github.com/vovakirdan/star-snake/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 10, // 100ms per tick, the default interval is 150ms
	}
}

func press(actions ...core.Action) core.InputFrame {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	return input
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := New()
	g1.Reset(testConfig())

	g2 := New()
	g2.Reset(testConfig())

	for i := 0; i < 100; i++ {
		var input core.InputFrame
		switch i {
		case 0:
			input = press(core.ActionStart)
		case 20:
			input = press(core.ActionDown)
		case 40:
			input = press(core.ActionLeft)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestStatusTransitions(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	steps := []struct {
		action core.Action
		want   Status
	}{
		{core.ActionPause, StatusReady},
		{core.ActionStart, StatusRunning},
		{core.ActionPause, StatusPaused},
		{core.ActionPause, StatusRunning},
		{core.ActionStart, StatusPaused},
		{core.ActionStart, StatusRunning},
		{core.ActionBack, StatusPaused},
		{core.ActionRestart, StatusPaused},
		{core.ActionBack, StatusReady},
	}

	for i, s := range steps {
		g.Step(press(s.action))
		if g.status != s.want {
			t.Fatalf("step %d (%s): status %s, want %s", i, s.action, g.status, s.want)
		}
	}
}

func TestMovePacing(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Tick 1 starts the run and accumulates 100ms, short of 150ms.
	if res := g.Step(press(core.ActionStart)); res.Moved {
		t.Fatal("moved on the start tick")
	}
	want := []bool{true, true, false, true, true, false}
	for i, w := range want {
		if res := g.Step(core.NewInputFrame()); res.Moved != w {
			t.Errorf("tick %d: moved=%v, want %v", i+2, res.Moved, w)
		}
	}
}

func TestMovePacingSlowTicks(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 5 // 200ms per tick, longer than the 150ms interval
	g := New()
	g.Reset(cfg)

	if res := g.Step(press(core.ActionStart)); !res.Moved {
		t.Fatal("a 200ms tick should pay for a move")
	}
	for i := 2; i <= 10; i++ {
		g.Step(core.NewInputFrame())
		if g.elapsed >= g.sim.Interval() {
			t.Fatalf("tick %d: %v left over, interval %v", i, g.elapsed, g.sim.Interval())
		}
	}

	// 2s of play at 150ms per move.
	if got := g.sim.Moves(); got != 13 {
		t.Errorf("moves after 10 ticks = %d, want 13", got)
	}
	if g.elapsed != 50*time.Millisecond {
		t.Errorf("elapsed = %v, want 50ms", g.elapsed)
	}
}

func TestMovePacingReachesFloor(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 5
	g := New()
	g.Reset(cfg)
	g.Step(press(core.ActionStart))

	// At the 60ms floor a 200ms tick holds three moves.
	g.sim.score = 1000
	g.elapsed = 0
	g.sim.body = []Point{{0, 5}}
	g.sim.food = Point{59, 19}
	before := g.sim.Moves()

	res := g.Step(core.NewInputFrame())
	if !res.Moved || g.sim.Moves()-before != 3 {
		t.Errorf("moves in one tick = %d, want 3", g.sim.Moves()-before)
	}
	if g.elapsed != 20*time.Millisecond {
		t.Errorf("elapsed = %v, want 20ms", g.elapsed)
	}

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "MAX") {
		t.Errorf("HUD should flag top speed: %q", screen.Row(0))
	}
}

func TestSlowTickStopsAtGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 1
	g := New()
	g.Reset(cfg)
	g.Step(press(core.ActionStart))
	if g.status == StatusOver {
		t.Fatal("run ended on the start tick")
	}

	// One second at 150ms per move would carry the head past the right wall.
	g.sim.body = []Point{{58, 10}}
	g.sim.dir, g.sim.pending = DirRight, DirRight
	g.sim.food = Point{0, 0}
	before := g.sim.Moves()

	res := g.Step(core.NewInputFrame())
	if res.Outcome != core.OutcomeGameOver || g.status != StatusOver {
		t.Fatalf("outcome %s, status %s, want game over", res.Outcome, g.status)
	}
	if got := g.sim.Moves() - before; got != 1 {
		t.Errorf("moves before the wall = %d, want 1", got)
	}
	if g.elapsed != 0 {
		t.Errorf("elapsed = %v after game over, want 0", g.elapsed)
	}
}

func TestNoMovesWhenNotRunning(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	head := g.sim.Head()

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.sim.Head() != head {
		t.Error("snake moved on the start screen")
	}

	g.Step(press(core.ActionStart))
	g.Step(press(core.ActionPause))
	head = g.sim.Head()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.sim.Head() != head {
		t.Error("snake moved while paused")
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(press(core.ActionStart))

	// Up then Left in the same frame must not reverse the snake.
	g.Step(press(core.ActionUp, core.ActionLeft))
	if g.sim.pending != DirUp {
		t.Errorf("Pending = %s, want up", g.sim.pending)
	}

	g.Step(press(core.ActionLeft))
	if g.sim.pending == DirLeft && g.sim.Direction() == DirRight {
		t.Error("reversal from right to left accepted")
	}
}

func TestEatingUpdatesBest(t *testing.T) {
	g := New()
	cfg := testConfig()
	cfg.HighScore = 5
	g.Reset(cfg)
	g.Step(press(core.ActionStart))

	g.sim.food = g.sim.Head().Step(DirRight)
	res := g.Step(core.NewInputFrame())
	if !res.Moved || res.Outcome != core.OutcomeAteFood {
		t.Fatalf("moved=%v outcome=%s, want ate-food", res.Moved, res.Outcome)
	}
	if res.State.Score != 10 || res.State.HighScore != 10 {
		t.Errorf("score=%d best=%d, want 10 and 10", res.State.Score, res.State.HighScore)
	}
	if !g.newBest {
		t.Error("new best not flagged")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(press(core.ActionStart))
	g.Step(press(core.ActionUp))

	var last core.StepResult
	for i := 0; i < 1000 && g.status == StatusRunning; i++ {
		last = g.Step(core.NewInputFrame())
	}

	if g.status != StatusOver {
		t.Fatalf("status %s, want game_over", g.status)
	}
	if last.Outcome != core.OutcomeGameOver || !last.State.GameOver {
		t.Errorf("last step: outcome=%s gameOver=%v", last.Outcome, last.State.GameOver)
	}
	if g.sim.Cause() != CauseWall {
		t.Errorf("Cause = %s, want wall", g.sim.Cause())
	}

	summary := g.Summary()
	fields := map[any]any{}
	for i := 0; i+1 < len(summary); i += 2 {
		fields[summary[i]] = summary[i+1]
	}
	if fields["cause"] != "wall" || fields["mode"] != "star" || fields["moves"] != g.sim.Moves() {
		t.Errorf("Summary = %v", summary)
	}

	// Movement is ignored after game over
	g.Step(press(core.ActionDown))
	if g.status != StatusOver {
		t.Error("movement changed status after game over")
	}

	g.Step(press(core.ActionRestart))
	if g.status != StatusRunning {
		t.Fatalf("status %s after restart, want running", g.status)
	}
	if g.sim.Score() != 0 || g.sim.Len() != 1 {
		t.Errorf("restart kept old run: score=%d len=%d", g.sim.Score(), g.sim.Len())
	}
}

func TestTooSmallFreezes(t *testing.T) {
	g := New()
	cfg := testConfig()
	cfg.ScreenW = 40
	g.Reset(cfg)

	if !g.Snapshot().TooSmall {
		t.Fatal("40 columns should be too small for a 60 wide board")
	}

	g.Step(press(core.ActionStart))
	head := g.sim.Head()
	for i := 0; i < 5; i++ {
		if res := g.Step(core.NewInputFrame()); res.Moved {
			t.Fatal("moved while the screen is too small")
		}
	}

	g.Resize(80, 30)
	if g.Snapshot().TooSmall {
		t.Fatal("still too small after resize")
	}
	if g.status != StatusRunning {
		t.Errorf("resize changed status to %s", g.status)
	}
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	if g.sim.Head() == head {
		t.Error("snake did not move after resize")
	}
}

func TestRequiredSize(t *testing.T) {
	g := New()
	w, h := g.RequiredSize()
	if w != 62 || h != 24 {
		t.Errorf("RequiredSize = %dx%d, want 62x24", w, h)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	screen := core.NewScreen(80, 30)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Star Snake", "Score: 0", "SPACE to start"} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen missing %q", want)
		}
	}

	g.Step(press(core.ActionStart))
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), glyphHead) {
		t.Error("running screen has no snake head")
	}

	g.Step(press(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Paused") {
		t.Error("pause overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	cfg := testConfig()
	cfg.ScreenW = 50
	g.Reset(cfg)

	screen := core.NewScreen(50, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small notice missing")
	}
}

func TestModes(t *testing.T) {
	star := New()
	classic := NewClassic()

	if star.ID() != "snake" || star.Title() != "Star Snake" {
		t.Errorf("star mode: %s %q", star.ID(), star.Title())
	}
	if classic.ID() != "snake_classic" || classic.Title() != "Snake (Classic)" {
		t.Errorf("classic mode: %s %q", classic.ID(), classic.Title())
	}
	if !star.rules.BonusEnabled {
		t.Error("star mode should have bonus stars")
	}
	if classic.rules.BonusEnabled {
		t.Error("classic mode should not have bonus stars")
	}

	for _, id := range []string{"snake", "snake_classic"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}
}

func TestSetConfig(t *testing.T) {
	defer SetConfig(config.DefaultSnakeConfig())

	cfg := config.DefaultSnakeConfig()
	cfg.Board.Width = 30
	cfg.Board.Height = 10
	SetConfig(cfg)

	g := New()
	if w, h := g.RequiredSize(); w != 32 || h != 14 {
		t.Errorf("RequiredSize = %dx%d, want 32x14", w, h)
	}
}
