package snake

import (
	"fmt"

	"github.com/vovakirdan/star-snake/internal/core"
)

// Glyphs used on the board.
const (
	glyphHead  = '@'
	glyphBody  = 'o'
	glyphCrash = 'X'
	glyphFood  = '★'
	glyphBonus = '✦'
	glyphStar  = '·'
)

// bonusBlinkMoves is how many remaining moves make the bonus start blinking.
const bonusBlinkMoves = 10

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		reqW, reqH := g.RequiredSize()
		g.renderOverlay(dst, core.ColorBrightRed,
			"Window too small",
			fmt.Sprintf("Resize to at least %dx%d", reqW, reqH))
		return
	}

	board := g.boardRect(dst)
	dst.DrawBoxColor(board, core.ColorCyan)
	g.renderStars(dst, board)
	g.renderItems(dst, board)
	g.renderSnake(dst, board)

	switch g.status {
	case StatusReady:
		g.renderOverlay(dst, core.ColorBrightYellow,
			"★ "+g.Title()+" ★",
			"Eat the stars, don't bite yourself",
			"Arrows/WASD or swipe to steer",
			"SPACE to start • Q to quit")
	case StatusPaused:
		g.renderOverlay(dst, core.ColorYellow,
			"Game Paused",
			"SPACE to resume • ESC for menu")
	case StatusOver:
		lines := []string{
			"Game Over",
			causeMessage(g.sim.Cause()),
			fmt.Sprintf("Score: %d   Best: %d", g.sim.Score(), max(g.best, g.sim.Score())),
		}
		if g.newBest {
			lines = append(lines, "New best score!")
		}
		lines = append(lines, "SPACE to play again • ESC for menu")
		g.renderOverlay(dst, core.ColorBrightRed, lines...)
	}
}

func causeMessage(c Cause) string {
	switch c {
	case CauseWall:
		return "You hit the wall"
	case CauseSelf:
		return "You bit yourself"
	case CauseBoardFilled:
		return "The board is full!"
	default:
		return ""
	}
}

// boardRect returns the screen rectangle of the board including its border.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w, h := g.rules.Width+2, g.rules.Height+2
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

// cell converts a board point to screen coordinates inside the border.
func cell(board core.Rect, p Point) (int, int) {
	inner := board.Inset(1)
	return inner.X + p.X, inner.Y + p.Y
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s   Score: %d   Best: %d   Length: %d   Speed: %d",
		g.Title(), g.sim.Score(), max(g.best, g.sim.Score()), g.sim.Len(), g.sim.SpeedLevel())
	if g.sim.AtTopSpeed() {
		hud += " MAX"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)
	if g.lastMove == core.OutcomeAteBonus && g.status == StatusRunning {
		dst.DrawTextColor(len([]rune(hud))+3, 0, "+BONUS", core.ColorBrightMagenta)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderStars draws the backdrop star field.
func (g *Game) renderStars(dst *core.Screen, board core.Rect) {
	for _, s := range g.stars {
		x, y := cell(board, s)
		dst.SetColor(x, y, glyphStar, core.ColorDim)
	}
}

// renderItems draws food and the bonus star.
func (g *Game) renderItems(dst *core.Screen, board core.Rect) {
	if food := g.sim.Food(); food.X >= 0 {
		x, y := cell(board, food)
		dst.SetColor(x, y, glyphFood, core.ColorBrightYellow)
	}

	pos, left, ok := g.sim.Bonus()
	if !ok {
		return
	}
	// Blink during the last moves of its lifetime
	if left <= bonusBlinkMoves && (g.tick/8)%2 == 1 {
		return
	}
	x, y := cell(board, pos)
	dst.SetColor(x, y, glyphBonus, core.ColorBrightMagenta)
}

// renderSnake draws body segments tail first so the head stays on top.
func (g *Game) renderSnake(dst *core.Screen, board core.Rect) {
	body := g.sim.Body()
	for i := len(body) - 1; i >= 1; i-- {
		x, y := cell(board, body[i])
		dst.SetColor(x, y, glyphBody, core.ColorGreen)
	}

	x, y := cell(board, body[0])
	dst.SetColor(x, y, glyphHead, core.ColorBrightGreen)

	if g.sim.Over() && g.sim.Cause() != CauseBoardFilled {
		cx, cy := cell(board, g.sim.Crash())
		dst.SetColor(cx, cy, glyphCrash, core.ColorBrightRed)
	}
}

// renderOverlay draws a centered box with one line of text per row.
// The first line is the title and uses the given color.
func (g *Game) renderOverlay(dst *core.Screen, titleColor core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	cx, cy := area.Center()
	box := core.NewRect(0, 0, maxLen+4, len(lines)+4)
	box.X, box.Y = cx-box.W/2, cy-box.H/2

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, titleColor)

	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = titleColor
		}
		dst.DrawTextCenteredColor(box.Y+2+i, l, color)
	}
}
