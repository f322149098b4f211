package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

type groundSegment struct {
	rect  core.Rect
	mover Mover
}

// Ground is the scrolling floor made of two segments placed end to end.
// A segment that leaves the screen on the left is moved to follow the other,
// so the strip never shows a gap.
type Ground struct {
	segments [2]groundSegment
	mask     *core.Mask
}

// NewGround places the left segment at x=0 and the right one directly after it,
// both bottom-aligned Offset pixels below the screen.
func NewGround(cfg config.Config, sprite assets.Sprite) *Ground {
	g := &Ground{mask: core.NewRectMask(sprite.W, sprite.H)}

	bottom := cfg.Screen.Height + cfg.Ground.Offset
	x := 0
	for i := range g.segments {
		r := core.NewRect(x, 0, sprite.W, sprite.H)
		r.SetBottom(bottom)
		g.segments[i] = groundSegment{
			rect:  r,
			mover: Mover{Speed: cfg.Physics.ScrollSpeed},
		}
		x = r.Right()
	}
	return g
}

// Advance scrolls both segments and wraps those that left the screen.
func (g *Ground) Advance(dt float64) {
	for i := range g.segments {
		g.segments[i].mover.Advance(&g.segments[i].rect, dt)
	}
	g.wrap()
}

// wrap repeats until both segments are on screen, so a single huge dt cannot
// leave both behind the left edge.
func (g *Ground) wrap() {
	for moved := true; moved; {
		moved = false
		for i := range g.segments {
			other := &g.segments[1-i]
			if g.segments[i].rect.Right() < 0 {
				g.segments[i].rect.X = other.rect.Right()
				moved = true
			}
		}
	}
}

// Segments returns the two segment rectangles.
func (g *Ground) Segments() [2]core.Rect {
	return [2]core.Rect{g.segments[0].rect, g.segments[1].rect}
}

// Top returns the y coordinate of the ground surface.
func (g *Ground) Top() int {
	return g.segments[0].rect.Y
}

// Colliders returns the collision shapes of both segments.
func (g *Ground) Colliders() [2]core.Collider {
	return [2]core.Collider{
		{Rect: g.segments[0].rect, Mask: g.mask},
		{Rect: g.segments[1].rect, Mask: g.mask},
	}
}
