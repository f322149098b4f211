package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair with a coin in the gap. Only the invisible anchor
// rectangle moves; pipe and coin positions are derived from it.
type Obstacle struct {
	cfg       config.Config
	pipe      assets.Sprite
	pipeMask  *core.Mask
	anchor    core.Rect
	mover     Mover
	gapOffset int
	coin      Coin
	collected bool
}

func newObstacle(xOffset int, cfg config.Config, set assets.Set, rng *rand.Rand) *Obstacle {
	o := &Obstacle{
		cfg:      cfg,
		pipe:     set.Pipe,
		pipeMask: core.NewRectMask(set.Pipe.W, set.Pipe.H),
		mover:    Mover{Speed: cfg.Physics.ScrollSpeed},
	}
	o.gapOffset = randomGapOffset(cfg.Pipes, rng)
	o.anchor = core.NewRect(
		cfg.Screen.Width+xOffset,
		anchorY(cfg, set.Pipe, o.gapOffset),
		set.Pipe.W,
		2*set.Pipe.H+cfg.Pipes.GapDistance,
	)
	o.coin = newCoin(cfg.Coin, set.Coin, o.anchor)
	return o
}

// obstacleSpacing is the horizontal distance between consecutive obstacles of
// a fresh level.
func obstacleSpacing(cfg config.Config, pipe assets.Sprite) int {
	return cfg.Screen.Width/2 + pipe.W/2
}

func randomGapOffset(p config.Pipes, rng *rand.Rand) int {
	return p.GapOffsetMin + rng.Intn(p.GapOffsetMax-p.GapOffsetMin+1)
}

func anchorY(cfg config.Config, pipe assets.Sprite, gapOffset int) int {
	return cfg.Screen.Height/2 - cfg.Pipes.GapDistance/2 - pipe.H + gapOffset
}

// TopPipeRect returns the upper (flipped) pipe, flush with the anchor's top.
func TopPipeRect(anchor core.Rect, pipe assets.Sprite) core.Rect {
	return core.NewRect(anchor.X, anchor.Y, pipe.W, pipe.H)
}

// BottomPipeRect returns the lower pipe, flush with the anchor's bottom.
func BottomPipeRect(anchor core.Rect, pipe assets.Sprite) core.Rect {
	return core.NewRect(anchor.X, anchor.Bottom()-pipe.H, pipe.W, pipe.H)
}

// Advance scrolls the anchor.
func (o *Obstacle) Advance(dt float64) {
	o.mover.Advance(&o.anchor, dt)
}

// OffScreen reports whether the anchor has fully left the screen on the left.
func (o *Obstacle) OffScreen() bool {
	return o.anchor.Right() < 0
}

// Recycle moves the obstacle back to the right screen edge with a new gap
// offset and makes its coin collectable again.
func (o *Obstacle) Recycle(rng *rand.Rand) {
	o.gapOffset = randomGapOffset(o.cfg.Pipes, rng)
	o.anchor.X = o.cfg.Screen.Width
	o.anchor.Y = anchorY(o.cfg, o.pipe, o.gapOffset)
	o.collected = false
	o.coin.Follow(o.anchor)
}

// Anchor returns the anchor rectangle.
func (o *Obstacle) Anchor() core.Rect {
	return o.anchor
}

// GapOffset returns the current vertical gap offset.
func (o *Obstacle) GapOffset() int {
	return o.gapOffset
}

// Pipes returns the top and bottom pipe rectangles.
func (o *Obstacle) Pipes() [2]core.Rect {
	return [2]core.Rect{TopPipeRect(o.anchor, o.pipe), BottomPipeRect(o.anchor, o.pipe)}
}

// PipeColliders returns the collision shapes of both pipes.
func (o *Obstacle) PipeColliders() [2]core.Collider {
	pipes := o.Pipes()
	return [2]core.Collider{
		{Rect: pipes[0], Mask: o.pipeMask},
		{Rect: pipes[1], Mask: o.pipeMask},
	}
}

// Coin returns the obstacle's coin.
func (o *Obstacle) Coin() *Coin {
	return &o.coin
}

// Collected reports whether the coin was picked up since the last recycle.
func (o *Obstacle) Collected() bool {
	return o.collected
}
