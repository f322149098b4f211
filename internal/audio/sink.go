// Package audio plays the game's sound requests. Effects are synthesized, so
// no sound files are needed.
package audio

import "github.com/vovakirdan/tui-flappy/internal/core"

// Sink plays sound requests. Priority requests use a reserved channel; the
// sink calls its completion callback when that channel becomes free.
type Sink interface {
	Play(req core.SoundRequest)
	Close() error
}

// PlayAll forwards every request of a frame to the sink.
func PlayAll(s Sink, reqs []core.SoundRequest) {
	for _, r := range reqs {
		s.Play(r)
	}
}

// Silent discards sounds. Priority requests complete immediately so that
// sound chains still advance when audio is off.
type Silent struct {
	OnPriorityDone func()
}

// Play implements Sink.
func (s Silent) Play(req core.SoundRequest) {
	if req.Priority && s.OnPriorityDone != nil {
		s.OnPriorityDone()
	}
}

// Close implements Sink.
func (Silent) Close() error { return nil }
