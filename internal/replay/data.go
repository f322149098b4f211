// Package replay records the inputs of a session and re-runs them. The game is
// deterministic for a given seed, configuration and frame log, so a recording
// of events and frame durations reproduces the whole run.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Version is the recording format version.
const Version = 1

// ErrUnsupportedVersion is returned for recordings of another format version.
var ErrUnsupportedVersion = errors.New("replay: unsupported version")

// Frame records the input of a single frame.
type Frame struct {
	DT     float64      `json:"dt"`
	Events []core.Event `json:"events,omitempty"`
}

// Recording contains all data needed to replay a session.
type Recording struct {
	Version   int           `json:"version"`
	Seed      int64         `json:"seed"`
	Theme     assets.Theme  `json:"theme"`
	StartedAt time.Time     `json:"started_at"`
	Config    config.Config `json:"config"`
	Frames    []Frame       `json:"frames"`
}

// Duration returns the simulated time covered by the recording.
func (r Recording) Duration() time.Duration {
	total := 0.0
	for _, f := range r.Frames {
		total += f.DT
	}
	return time.Duration(total * float64(time.Second))
}

// Marshal encodes a recording as JSON.
func Marshal(r Recording) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode recording: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a recording and checks its version.
func Unmarshal(data []byte) (Recording, error) {
	var r Recording
	if err := json.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("replay: cannot decode recording: %w", err)
	}
	if r.Version != Version {
		return r, fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	return r, nil
}
