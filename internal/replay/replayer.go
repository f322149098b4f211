package replay

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Replayer feeds recorded frames back one at a time.
type Replayer struct {
	rec   Recording
	frame int
}

// NewReplayer creates a replayer positioned at the first frame.
func NewReplayer(rec Recording) *Replayer {
	return &Replayer{rec: rec}
}

// Next returns the next frame, or false at the end of the recording.
func (r *Replayer) Next() (Frame, bool) {
	if r.frame >= len(r.rec.Frames) {
		return Frame{}, false
	}
	f := r.rec.Frames[r.frame]
	r.frame++
	return f, true
}

// NewGame builds the game a recording was made with.
func NewGame(rec Recording, logger *log.Logger) (*flappy.Game, error) {
	g, err := flappy.New(rec.Config, assets.Standard(rec.Theme),
		flappy.WithSeed(rec.Seed),
		flappy.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return g, nil
}

// Result summarises a replayed session.
type Result struct {
	Frames      int
	Duration    time.Duration
	Score       int // score of the last level
	BestScore   int // best score over all levels of the session
	Deaths      int
	State       flappy.GameState
	PlayerState flappy.PlayerState
}

// Play re-runs a recording headlessly and reports the outcome. Priority
// channel completions were recorded as events, so none are synthesized here.
func Play(rec Recording, logger *log.Logger) (Result, error) {
	g, err := NewGame(rec, logger)
	if err != nil {
		return Result{}, err
	}

	var res Result
	prev := g.State()
	r := NewReplayer(rec)
	for {
		f, ok := r.Next()
		if !ok {
			break
		}
		out := g.Step(f.Events, f.DT)
		res.Frames++

		if out.State == flappy.StateGameOver && prev != flappy.StateGameOver {
			res.Deaths++
		}
		if out.Score > res.BestScore {
			res.BestScore = out.Score
		}
		prev = out.State
		if g.Done() {
			break
		}
	}

	res.Duration = rec.Duration()
	res.Score = g.Score()
	res.State = g.State()
	res.PlayerState = g.Level().Player.State()
	return res, nil
}
