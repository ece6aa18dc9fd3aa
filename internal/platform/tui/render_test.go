package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/star-snake/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColor(2, 0, "score", core.ColorWhite)
	s.DrawTextColor(2, 1, "snake", core.ColorBrightGreen)
	s.SetColor(0, 2, '★', core.ColorBrightYellow)

	out := RenderScreen(s)
	for _, want := range []string{"score", "snake", "★"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("got %d line breaks, want 2", got)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDim; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
