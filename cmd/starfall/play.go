package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoval/starfall/internal/core"
	"github.com/dkoval/starfall/internal/game"
	"github.com/dkoval/starfall/internal/platform/audio"
	"github.com/dkoval/starfall/internal/platform/tui"
	"github.com/dkoval/starfall/internal/registry"
	"github.com/dkoval/starfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a Starfall session.

Controls:
  A/D or Left/Right - Move ship horizontally
  W/S or Up/Down    - Move ship vertically / navigate menu
  Space/Enter       - Confirm / resume
  P/Esc             - Pause
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Fewer, slower enemies and a faster gun
  normal - The standard configuration
  hard   - More, faster enemies and a slower gun
  fixed  - Use the loaded config exactly as written

Examples:
  starfall play
  starfall play --difficulty hard
  starfall play --config ./my-starfall.yaml
  starfall play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Terminal size for the projection surface
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before the game loads them in Reset
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g, err := registry.Create("starfall")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Sound is optional too
	sound := audio.NewPlayer()
	if err := sound.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no audio device: %v\n", err)
		sound = nil
	}
	sound.SetMuted(flagMute)

	runErr := tui.Run(g, store, sound, cfg)

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
