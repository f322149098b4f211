package flappy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

func covers(g *Ground, width int) bool {
	segs := g.Segments()
	for x := 0; x < width; x++ {
		if !(x >= segs[0].X && x < segs[0].Right()) && !(x >= segs[1].X && x < segs[1].Right()) {
			return false
		}
	}
	return true
}

func TestNewGroundLayout(t *testing.T) {
	cfg := config.Default()
	g := NewGround(cfg, assets.Standard(assets.DefaultTheme).Ground)

	segs := g.Segments()
	assert.Equal(t, 0, segs[0].X)
	assert.Equal(t, segs[0].Right(), segs[1].X)
	assert.Equal(t, 512+28, segs[0].Bottom())
	assert.Equal(t, 428, g.Top())
}

func TestGroundWrapsLeavingSegment(t *testing.T) {
	cfg := config.Default()
	g := NewGround(cfg, assets.Standard(assets.DefaultTheme).Ground)

	// 337 px moves the left segment fully off screen.
	g.Advance(337.0 / cfg.Physics.ScrollSpeed)

	segs := g.Segments()
	assert.Equal(t, -1, segs[1].X)
	assert.Equal(t, segs[1].Right(), segs[0].X, "left segment now follows the right one")
	assert.True(t, covers(g, cfg.Screen.Width))
}

func TestGroundContinuity(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 20; run++ {
		g := NewGround(cfg, assets.Standard(assets.DefaultTheme).Ground)
		for i := 0; i < 500; i++ {
			var dt float64
			switch rng.Intn(4) {
			case 0:
				dt = rng.Float64() / 500
			case 1:
				dt = 1.0 / 120
			case 2:
				dt = rng.Float64()
			default:
				dt = rng.Float64() * 20 // several screen widths in one frame
			}
			g.Advance(dt)
			require.True(t, covers(g, cfg.Screen.Width), "run %d step %d: gap in ground %v", run, i, g.Segments())
		}
	}
}
