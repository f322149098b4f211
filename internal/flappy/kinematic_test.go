package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestMoverWaitsForWholePixel(t *testing.T) {
	m := Mover{Speed: 150}
	r := core.NewRect(100, 0, 10, 10)

	// 150 px/s * 1/300 s = 0.5 px: nothing moves yet.
	assert.Equal(t, 0, m.Advance(&r, 1.0/300))
	assert.Equal(t, 100, r.X)
	assert.InDelta(t, 0.5, m.Residue(), 1e-9)

	// Second half-pixel completes a pixel.
	assert.Equal(t, 1, m.Advance(&r, 1.0/300))
	assert.Equal(t, 99, r.X)
}

func TestMoverIgnoresNonPositiveDT(t *testing.T) {
	m := Mover{Speed: 150}
	r := core.NewRect(10, 0, 1, 1)
	assert.Equal(t, 0, m.Advance(&r, 0))
	assert.Equal(t, 0, m.Advance(&r, -1))
	assert.Equal(t, 10, r.X)
}

func TestMoverRoundsHalfToEven(t *testing.T) {
	m := Mover{Speed: 1}
	r := core.NewRect(0, 0, 1, 1)
	assert.Equal(t, 2, m.Advance(&r, 2.5))
	assert.InDelta(t, 0.5, m.Residue(), 1e-9)
}

func TestMoverKeepsTotalDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 200; run++ {
		m := Mover{Speed: 150}
		r := core.NewRect(0, 0, 1, 1)
		total := 0.0

		steps := 1 + rng.Intn(500)
		for i := 0; i < steps; i++ {
			var dt float64
			switch rng.Intn(3) {
			case 0:
				dt = rng.Float64() / 1000 // far below a pixel
			case 1:
				dt = rng.Float64() / 60
			default:
				dt = rng.Float64() / 4
			}
			total += dt
			m.Advance(&r, dt)
		}

		expected := int(math.Round(150 * total))
		assert.InDelta(t, expected, -r.X, 1, "run %d: %d steps over %.4fs", run, steps, total)
	}
}
