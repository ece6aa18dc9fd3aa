// starsnake is a snake game for the terminal: eat the stars, grow, and
// don't run into the walls or your own tail.
//
// Usage:
//
//	starsnake play [mode]        - Play a mode (default: snake)
//	starsnake menu               - Pick a mode interactively
//	starsnake list               - List available modes
//	starsnake scores [mode]      - Show best scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.starsnake/scores.db)
//	--config <path>       - Load a custom snake.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound effects
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/star-snake/internal/games/snake"
	"github.com/vovakirdan/star-snake/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starsnake",
	Short: "Star Snake - the classic snake game in your terminal",
	Long: `Star Snake is the classic snake game for the terminal.

Steer the snake with the arrow keys, WASD or mouse swipes, eat the
stars to grow and score, and avoid the walls and your own body.
The snake speeds up as your score grows.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all available modes
  scores   - View or reset best scores

Examples:
  starsnake play
  starsnake play snake_classic --difficulty hard
  starsnake menu --mute
  starsnake scores --reset snake`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
