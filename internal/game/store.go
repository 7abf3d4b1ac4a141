package game

// ScoreStore persists the high score across sessions. The simulation writes
// through it synchronously when a life ends with a tying-or-better score.
// Implementations decide what a failed write means; the simulation treats the
// write as best-effort and keeps going.
type ScoreStore interface {
	// HighScore returns the persisted high score, or 0 when none exists.
	HighScore() (int, error)

	// SaveHighScore records a new high score.
	SaveHighScore(score int) error
}
