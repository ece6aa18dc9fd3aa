package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-snake/internal/core"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease}
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name   string
		to     [2]int
		expect core.Action
	}{
		{"right", [2]int{20, 10}, core.ActionRight},
		{"left", [2]int{4, 11}, core.ActionLeft},
		{"down", [2]int{11, 13}, core.ActionDown},
		{"up", [2]int{10, 8}, core.ActionUp},
		{"click", [2]int{10, 10}, core.ActionStart},
		{"too short", [2]int{12, 10}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s swipeTracker
			if got := s.handle(press(10, 10)); got != core.ActionNone {
				t.Fatalf("press returned %s", got)
			}
			if got := s.handle(release(tt.to[0], tt.to[1])); got != tt.expect {
				t.Errorf("swipe to %v = %s, want %s", tt.to, got, tt.expect)
			}
		})
	}
}

func TestSwipeIgnoresStrayEvents(t *testing.T) {
	var s swipeTracker

	if got := s.handle(release(30, 10)); got != core.ActionNone {
		t.Errorf("release without press = %s", got)
	}

	right := tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	s.handle(right)
	if got := s.handle(release(30, 10)); got != core.ActionNone {
		t.Errorf("right-button drag = %s", got)
	}

	motion := tea.MouseMsg{X: 15, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
	if got := s.handle(motion); got != core.ActionNone {
		t.Errorf("motion = %s", got)
	}
}
