package core

// Sound identifies a sound effect.
type Sound int

const (
	SoundWing   Sound = iota // flap
	SoundPoint               // coin collected
	SoundHit                 // lethal collision
	SoundDie                 // follows the hit sound
	SoundSwoosh              // restart
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundWing:
		return "Wing"
	case SoundPoint:
		return "Point"
	case SoundHit:
		return "Hit"
	case SoundDie:
		return "Die"
	case SoundSwoosh:
		return "Swoosh"
	default:
		return "Unknown"
	}
}

// SoundRequest asks the audio layer to play an effect.
// Priority requests go to the reserved channel whose completion is reported
// back as EventPriorityFinished.
type SoundRequest struct {
	Sound    Sound
	Priority bool
}
