// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Speed   SpeedConfig   `yaml:"speed"`
	Bonus   BonusConfig   `yaml:"bonus"`
	Audio   AudioConfig   `yaml:"audio"`
}

// BoardConfig defines the playfield grid.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// ScoringConfig defines points awarded per item.
type ScoringConfig struct {
	FoodPoints  int `yaml:"food_points"`
	BonusPoints int `yaml:"bonus_points"`
}

// SpeedConfig defines the move interval schedule.
// The interval shortens by StepMS every EveryPoints points, down to MinIntervalMS.
type SpeedConfig struct {
	BaseIntervalMS int  `yaml:"base_interval_ms"`
	MinIntervalMS  int  `yaml:"min_interval_ms"`
	StepMS         int  `yaml:"step_ms"`
	EveryPoints    int  `yaml:"every_points"`
	Fixed          bool `yaml:"fixed"` // true disables speed scaling
}

// BonusConfig defines the short-lived bonus star.
type BonusConfig struct {
	Enabled    bool `yaml:"enabled"`
	EveryFoods int  `yaml:"every_foods"` // spawn after this many foods
	Lifetime   int  `yaml:"lifetime"`    // moves before the bonus disappears
}

// AudioConfig defines sound effect settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Fixed = false
		cfg.Speed.BaseIntervalMS += 40
		cfg.Speed.MinIntervalMS += 20
	case DifficultyHard:
		cfg.Speed.Fixed = false
		cfg.Speed.BaseIntervalMS = max(cfg.Speed.BaseIntervalMS-40, cfg.Speed.MinIntervalMS)
		cfg.Speed.StepMS += 5
	case DifficultyFixed:
		cfg.Speed.Fixed = true
	}
}

// Validate reports configuration values the game cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width < 4 || c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board must be at least 4x4, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.StartX < 0 || c.Board.StartX >= c.Board.Width ||
		c.Board.StartY < 0 || c.Board.StartY >= c.Board.Height {
		errs = append(errs, fmt.Errorf("start cell (%d, %d) is outside the board", c.Board.StartX, c.Board.StartY))
	}
	if c.Scoring.FoodPoints <= 0 {
		errs = append(errs, errors.New("food_points must be positive"))
	}
	if c.Scoring.BonusPoints < 0 {
		errs = append(errs, errors.New("bonus_points must not be negative"))
	}
	if c.Speed.BaseIntervalMS <= 0 || c.Speed.MinIntervalMS <= 0 {
		errs = append(errs, errors.New("speed intervals must be positive"))
	}
	if c.Speed.MinIntervalMS > c.Speed.BaseIntervalMS {
		errs = append(errs, fmt.Errorf("min_interval_ms %d exceeds base_interval_ms %d",
			c.Speed.MinIntervalMS, c.Speed.BaseIntervalMS))
	}
	if c.Speed.StepMS < 0 || c.Speed.EveryPoints <= 0 {
		errs = append(errs, errors.New("step_ms must not be negative and every_points must be positive"))
	}
	if c.Bonus.Enabled && (c.Bonus.EveryFoods <= 0 || c.Bonus.Lifetime <= 0) {
		errs = append(errs, errors.New("bonus every_foods and lifetime must be positive"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %.2f is outside [0, 1]", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}
