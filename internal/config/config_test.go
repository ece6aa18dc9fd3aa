package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded default = %+v\nhardcoded = %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "board:\n  width: 30\n  height: 12\nspeed:\n  fixed: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Width != 30 || cfg.Board.Height != 12 {
		t.Errorf("board = %dx%d, expected 30x12", cfg.Board.Width, cfg.Board.Height)
	}
	if !cfg.Speed.Fixed {
		t.Error("speed.fixed should be true")
	}
	// Unset keys keep their defaults
	if cfg.Scoring.FoodPoints != 10 || cfg.Speed.BaseIntervalMS != 150 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(invalid); err == nil {
		t.Error("expected validation error when start cell falls outside the board")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"tiny board", func(c *SnakeConfig) { c.Board.Width = 3 }},
		{"start outside", func(c *SnakeConfig) { c.Board.StartY = 20 }},
		{"no food points", func(c *SnakeConfig) { c.Scoring.FoodPoints = 0 }},
		{"floor above base", func(c *SnakeConfig) { c.Speed.MinIntervalMS = 500 }},
		{"zero threshold", func(c *SnakeConfig) { c.Speed.EveryPoints = 0 }},
		{"bonus without lifetime", func(c *SnakeConfig) { c.Bonus.Lifetime = 0 }},
		{"loud", func(c *SnakeConfig) { c.Audio.Volume = 2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("hard preset = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultSnakeConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Speed.BaseIntervalMS != 190 {
		t.Errorf("easy base interval = %d, expected 190", easy.Speed.BaseIntervalMS)
	}

	hard := DefaultSnakeConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Speed.BaseIntervalMS != 110 || hard.Speed.StepMS != 15 {
		t.Errorf("hard speed = %+v", hard.Speed)
	}

	fixed := DefaultSnakeConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if !fixed.Speed.Fixed {
		t.Error("fixed preset should disable speed scaling")
	}

	for _, cfg := range []SnakeConfig{easy, hard, fixed} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}

func TestSpeedSchedule(t *testing.T) {
	s := NewSpeedSchedule(DefaultSnakeConfig().Speed)

	tests := []struct {
		score    int
		interval time.Duration
		level    int
	}{
		{0, 150 * time.Millisecond, 1},
		{40, 150 * time.Millisecond, 1},
		{50, 140 * time.Millisecond, 2},
		{120, 130 * time.Millisecond, 3},
		{450, 60 * time.Millisecond, 10},
		{5000, 60 * time.Millisecond, 10},
	}

	for _, tc := range tests {
		if got := s.Interval(tc.score); got != tc.interval {
			t.Errorf("Interval(%d) = %v, expected %v", tc.score, got, tc.interval)
		}
		if got := s.Level(tc.score); got != tc.level {
			t.Errorf("Level(%d) = %d, expected %d", tc.score, got, tc.level)
		}
	}

	// Non-increasing in score
	prev := s.Interval(0)
	for score := 0; score <= 1000; score += 10 {
		cur := s.Interval(score)
		if cur > prev {
			t.Fatalf("interval increased at score %d: %v > %v", score, cur, prev)
		}
		if cur < s.Floor() {
			t.Fatalf("interval %v below floor at score %d", cur, score)
		}
		prev = cur
	}
}

func TestSpeedScheduleFixed(t *testing.T) {
	cfg := DefaultSnakeConfig().Speed
	cfg.Fixed = true
	s := NewSpeedSchedule(cfg)

	if s.Interval(1000) != s.Base() {
		t.Errorf("fixed schedule should keep base interval, got %v", s.Interval(1000))
	}
	if s.Level(1000) != 1 {
		t.Errorf("fixed schedule level = %d, expected 1", s.Level(1000))
	}
}
