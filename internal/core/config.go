package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score           int  // Current score
	HighScore       int  // Best score ever recorded
	HighScoreBeaten bool // True once this life's score exceeded the loaded high score
	GameOver        bool // Whether the current life has ended
	Paused          bool // Whether the game is paused
	InMenu          bool // Whether the main menu is showing
}

// Event is a discrete signal emitted during a tick for the audio/FX
// collaborator. The simulation never plays sounds itself.
type Event int

const (
	EventNone      Event = iota
	EventShot            // Player fired a bullet
	EventExplosion       // An enemy was destroyed
	EventShipLost        // The ship was hit; life ended
	EventRunStart        // A new life started from the menu
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // Set when the user chose Exit from the main menu
}
