package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-snake/internal/platform/tui"
	"github.com/vovakirdan/star-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode (default: snake).

Modes:
  snake          - Star Snake: food plus short-lived bonus stars
  snake_classic  - Classic rules: food only

Controls:
  Arrows/WASD    - Steer (or swipe with the mouse)
  Space/Click    - Start, pause and resume
  P              - Pause
  Esc            - Pause, then back to the start screen
  R              - Restart (after game over)
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower start and floor
  normal - 150ms per move, 10ms faster every 50 points, 60ms floor
  hard   - Faster start and bigger steps
  fixed  - Constant speed

Examples:
  starsnake play
  starsnake play snake_classic
  starsnake play --difficulty hard
  starsnake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'starsnake list' to see available modes", gameID)
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	s.logger.Info("starting", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	if err := tui.Run(game, s.options(), s.runtime); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
