package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the stored high score",
	Long: `Display the best score saved in the scores database.

Examples:
  flappy best
  flappy best --reset
  flappy best --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the stored high score")
}

func runBest(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetHighScore(flappy.GameID); err != nil {
			store.Close()
			fail("resetting high score: %v", err)
		}
		logger.Info("high score reset", "db", flagDBPath)
		fmt.Println("High score reset.")
		return
	}

	entry, err := store.HighScoreEntry(flappy.GameID)
	if err != nil {
		store.Close()
		fail("retrieving high score: %v", err)
	}

	fmt.Println("High Score - Flappy")
	fmt.Println()

	if entry.Score == 0 {
		fmt.Println("No score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy' to set the first high score!")
		return
	}

	fmt.Printf("  Best: %d\n", entry.Score)
	if !entry.UpdatedAt.IsZero() {
		fmt.Printf("  Set:  %s\n", entry.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
}
