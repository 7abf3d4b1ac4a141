package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoval/starfall/internal/platform/tui"
	"github.com/dkoval/starfall/internal/storage"
)

var (
	flagBoard bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top 10 runs and the all-time high score.

Examples:
  starfall scores
  starfall scores --board   # interactive scoreboard
  starfall scores --clear   # delete the run history (keeps the high score)`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded run history")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		count, clearErr := store.ClearRuns()
		if clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d recorded runs.\n", count)
		return
	}

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if boardErr := tui.RunScoreboard(store, width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starfall - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'starfall' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, hsErr := store.HighScore(); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
