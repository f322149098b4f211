package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Mover scrolls a rectangle leftwards at a constant speed in whole pixels.
// Fractional motion is kept in an accumulator so that no distance is lost
// between frames regardless of frame duration. Unlike an accumulator that
// resets to zero after each whole-pixel move, the rounding residue carries over.
type Mover struct {
	Speed float64 // pixels per second
	acc   float64
}

// Advance accumulates Speed*dt and moves r left by the rounded whole-pixel
// part once at least one pixel is pending. It returns the pixels moved.
// The rounding residue stays in the accumulator.
func (m *Mover) Advance(r *core.Rect, dt float64) int {
	if dt <= 0 {
		return 0
	}
	m.acc += m.Speed * dt
	if m.acc < 1 {
		return 0
	}
	moved := int(math.RoundToEven(m.acc))
	r.X -= moved
	m.acc -= float64(moved)
	return moved
}

// Residue returns the sub-pixel distance not yet applied.
func (m *Mover) Residue() float64 {
	return m.acc
}
