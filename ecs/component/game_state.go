package component

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the singleton scoring and pacing record of a run.
type GameState struct {
	Phase Phase
	Score int
	Speed float64

	// Frame counters driving the spawner; each resets when it fires.
	ObstacleTimer int
	CoinTimer     int

	// Milestones counts score multiples already rewarded with a speed ramp.
	Milestones int

	FinalScore      int
	Frame           int
	CoinsCollected  int
	ObstaclesPassed int
}

func (s *GameState) Running() bool {
	return s != nil && s.Phase == PhaseRunning
}

var GameStateComponent = NewComponent[GameState]()
