package tui

import (
	"github.com/charmbracelet/log"

	"github.com/dkoval/starfall/internal/game"
)

// LoggingStore wraps a ScoreStore and logs failures. The simulation treats
// persistence as best-effort; this is where those swallowed errors surface.
type LoggingStore struct {
	inner  game.ScoreStore
	logger *log.Logger
}

// NewLoggingStore wraps the given store. A nil logger uses the default.
func NewLoggingStore(inner game.ScoreStore, logger *log.Logger) *LoggingStore {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingStore{inner: inner, logger: logger}
}

// HighScore reads the persisted best score, logging read failures.
func (s *LoggingStore) HighScore() (int, error) {
	score, err := s.inner.HighScore()
	if err != nil {
		s.logger.Warn("could not load high score", "error", err)
	}
	return score, err
}

// SaveHighScore persists the best score, logging write failures.
func (s *LoggingStore) SaveHighScore(score int) error {
	err := s.inner.SaveHighScore(score)
	if err != nil {
		s.logger.Warn("could not save high score", "score", score, "error", err)
	}
	return err
}
