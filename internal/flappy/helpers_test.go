package flappy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const frameDT = 1.0 / 120

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.Default(), assets.Standard(assets.DefaultTheme), WithSeed(42))
	require.NoError(t, err)
	return g
}

func startedGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.Step([]core.Event{core.EventPrimary}, 0)
	require.Equal(t, StateRunning, g.State())
	return g
}

// centerObstacleOn moves an obstacle so that its gap, and therefore its coin,
// is centred on the given point.
func centerObstacleOn(o *Obstacle, cx, cy int) {
	o.anchor.SetCenterX(cx)
	o.anchor.SetCenterY(cy)
	o.coin.Follow(o.anchor)
}

func soundsOf(f Frame) []core.Sound {
	var out []core.Sound
	for _, s := range f.Sounds {
		out = append(out, s.Sound)
	}
	return out
}

func hasVisual(draws []core.DrawRequest, v core.Visual) bool {
	for _, d := range draws {
		if d.Visual == v {
			return true
		}
	}
	return false
}
