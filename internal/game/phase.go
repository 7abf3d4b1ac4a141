package game

// Phase is the game's top-level state. Transitions are owned exclusively by
// the Step dispatch and endLife; nothing else mutates it.
//
// Valid transitions:
//
//	Menu     -> Playing   (Play selected; full reset of the life)
//	Menu     -> exit      (Exit selected; surfaced as StepResult.Quit)
//	Playing  -> Paused    (pause requested)
//	Paused   -> Playing   (resume requested)
//	Playing  -> GameOver  (ship hit by enemy or enemy bullet)
//	GameOver -> Menu      (acknowledged)
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
