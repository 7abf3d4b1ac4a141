// starfall is a terminal space shooter: dodge the falling enemies, shoot them
// down, survive for the high score.
//
// Usage:
//
//	starfall                 - Play (same as 'starfall play')
//	starfall play            - Play the game
//	starfall scores          - Show the best recorded runs
//	starfall serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.starfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/dkoval/starfall/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - a space shooter in your terminal",
	Long: `Starfall is a terminal-based arcade shooter. Pilot your ship, dodge the
falling enemies and their fire, and shoot your way to a new high score.

Available commands:
  play     - Play the game (the default when no command is given)
  scores   - View the best recorded runs
  serve    - Start SSH server for remote play

Examples:
  starfall
  starfall play --difficulty hard
  starfall scores --board
  starfall serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfall/scores.db", "Path to scores database")

	// The bare command plays too, so it takes the play flags
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
