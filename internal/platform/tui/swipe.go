package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-snake/internal/core"
)

// swipeMinDist is the drag length, in columns, that counts as a swipe.
// Rows are scaled by two since terminal cells are about twice as tall as wide.
const swipeMinDist = 2

// swipeTracker turns mouse drags into movement actions and clicks into Start.
type swipeTracker struct {
	active bool
	x, y   int
}

// handle consumes a mouse message and returns the resulting action, if any.
func (s *swipeTracker) handle(msg tea.MouseMsg) core.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.ActionNone
		}
		s.active = true
		s.x, s.y = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !s.active {
			return core.ActionNone
		}
		s.active = false
		dx, dy := msg.X-s.x, (msg.Y-s.y)*2
		if dx == 0 && dy == 0 {
			return core.ActionStart
		}
		return core.SwipeAction(dx, dy, swipeMinDist)
	}
	return core.ActionNone
}
