package flappy

// GameState is the top-level state of a session.
type GameState int

const (
	StateIdle GameState = iota
	StateRunning
	StatePaused
	StateGameOver
	StateExit
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAMEOVER"
	case StateExit:
		return "EXIT"
	default:
		return "UNKNOWN"
	}
}

// PlayerState is the life-cycle state of the bird.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerFlying
	PlayerDying
	PlayerDead
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "IDLE"
	case PlayerFlying:
		return "FLYING"
	case PlayerDying:
		return "DYING"
	case PlayerDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}
