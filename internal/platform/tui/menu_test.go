package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/star-snake/internal/games/snake"
	"github.com/vovakirdan/star-snake/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != "snake" {
		t.Errorf("Selected() = %q, want snake", m.Selected())
	}

	m = NewMenuModel(nil, testRuntime())
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != "snake_classic" {
		t.Errorf("Selected() = %q, want snake_classic", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.Selected() != "" {
		t.Errorf("quit selected %q", m.Selected())
	}
	if m.View() != "" {
		t.Error("view not cleared after quit")
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.RecordScore("snake_classic", 370)

	view := NewMenuModel(store, testRuntime()).View()
	for _, want := range []string{"Star Snake", "Snake (Classic)", "370"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu missing %q", want)
		}
	}
}
