package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded snake configuration.
// It matches defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  60,
			Height: 20,
			StartX: 10,
			StartY: 10,
		},
		Scoring: ScoringConfig{
			FoodPoints:  10,
			BonusPoints: 50,
		},
		Speed: SpeedConfig{
			BaseIntervalMS: 150,
			MinIntervalMS:  60,
			StepMS:         10,
			EveryPoints:    50,
		},
		Bonus: BonusConfig{
			Enabled:    true,
			EveryFoods: 5,
			Lifetime:   40,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  1.0,
		},
	}
}
