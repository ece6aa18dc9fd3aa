package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-snake/internal/registry"
	"github.com/vovakirdan/star-snake/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show or reset best scores",
	Long: `Display the best score of every mode, or of a single mode.
With --reset the best score is deleted instead.

Examples:
  starsnake scores
  starsnake scores snake_classic
  starsnake scores --reset snake`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the best score instead of showing it")
}

func runScores(_ *cobra.Command, args []string) error {
	ids := make([]string, 0, 2)
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown mode %q, run 'starsnake list' to see available modes", args[0])
		}
		ids = append(ids, args[0])
	} else {
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagReset {
		for _, id := range ids {
			if err := store.ResetBest(id); err != nil {
				return err
			}
			fmt.Printf("Best score for %s reset.\n", id)
		}
		return nil
	}

	entries, err := store.Entries()
	if err != nil {
		return err
	}
	byID := make(map[string]storage.BestEntry, len(entries))
	for _, e := range entries {
		byID[e.GameID] = e
	}

	fmt.Println("Best Scores")
	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %s\n", "Mode", "Best", "Date")
	fmt.Printf("  %-16s  %-8s  %s\n", "----", "----", "----")
	for _, id := range ids {
		e, ok := byID[id]
		if !ok {
			fmt.Printf("  %-16s  %-8s  %s\n", id, "-", "-")
			continue
		}
		fmt.Printf("  %-16s  %-8d  %s\n", id, e.Score, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
