package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// AudioPhase is the state of the death sound chain.
type AudioPhase int

const (
	AudioIdle AudioPhase = iota
	AudioPlayingHit
	AudioPlayingDie
)

// String returns a human-readable name for the phase.
func (p AudioPhase) String() string {
	switch p {
	case AudioIdle:
		return "IDLE"
	case AudioPlayingHit:
		return "PLAYING_HIT"
	case AudioPlayingDie:
		return "PLAYING_DIE"
	default:
		return "UNKNOWN"
	}
}

// DeathSequencer chains the hit and die sounds. The hit sound goes to the
// priority channel; when the audio layer reports that channel finished, the
// die sound follows exactly once.
type DeathSequencer struct {
	phase AudioPhase
}

// Start begins the chain and returns the priority hit request.
// It returns false if a chain is already running.
func (s *DeathSequencer) Start() (core.SoundRequest, bool) {
	if s.phase != AudioIdle {
		return core.SoundRequest{}, false
	}
	s.phase = AudioPlayingHit
	return core.SoundRequest{Sound: core.SoundHit, Priority: true}, true
}

// Notify handles a priority-channel-finished notification. It returns the die
// request the first time it is called after Start and nothing afterwards.
func (s *DeathSequencer) Notify() (core.SoundRequest, bool) {
	if s.phase != AudioPlayingHit {
		return core.SoundRequest{}, false
	}
	s.phase = AudioPlayingDie
	return core.SoundRequest{Sound: core.SoundDie}, true
}

// Phase returns the current phase.
func (s *DeathSequencer) Phase() AudioPhase {
	return s.phase
}
