package replay

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Recorder collects frames while a session runs.
type Recorder struct {
	mu  sync.Mutex
	rec Recording
}

// NewRecorder starts a recording for a session with the given parameters.
func NewRecorder(seed int64, theme assets.Theme, cfg config.Config) *Recorder {
	return &Recorder{
		rec: Recording{
			Version:   Version,
			Seed:      seed,
			Theme:     theme,
			StartedAt: time.Now().UTC(),
			Config:    cfg,
		},
	}
}

// Record appends one frame. The events slice is copied.
func (r *Recorder) Record(events []core.Event, dt float64) {
	var evs []core.Event
	if len(events) > 0 {
		evs = append([]core.Event(nil), events...)
	}

	r.mu.Lock()
	r.rec.Frames = append(r.rec.Frames, Frame{DT: dt, Events: evs})
	r.mu.Unlock()
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rec.Frames)
}

// Recording returns a snapshot of what was recorded so far.
func (r *Recorder) Recording() Recording {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.rec
	out.Frames = append([]Frame(nil), r.rec.Frames...)
	return out
}
