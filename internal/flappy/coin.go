package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Coin is the collectable placed in the middle of an obstacle's gap.
// It follows its anchor horizontally and bobs on its own vertically.
type Coin struct {
	cfg    config.Coin
	sprite assets.Sprite
	mask   *core.Mask
	rect   core.Rect

	frame     int
	animTimer float64

	bobOffset int
	bobDir    int
	bobTimer  float64
}

func newCoin(cfg config.Coin, sprite assets.Sprite, anchor core.Rect) Coin {
	radius := core.Min(sprite.W, sprite.H) / cfg.MaskDivisor
	c := Coin{
		cfg:       cfg,
		sprite:    sprite,
		mask:      core.NewCircleMask(sprite.W, sprite.H, radius),
		rect:      sprite.Rect(),
		animTimer: cfg.AnimationStep,
		bobDir:    1,
		bobTimer:  cfg.BobStep,
	}
	c.Follow(anchor)
	return c
}

// Follow re-derives the coin position from the anchor and the bob offset.
func (c *Coin) Follow(anchor core.Rect) {
	c.rect.SetCenterX(anchor.CenterX())
	c.rect.SetCenterY(anchor.CenterY() + c.bobOffset)
}

// Update bobs, spins and re-aligns the coin to the anchor.
func (c *Coin) Update(anchor core.Rect, dt float64) {
	c.bob(dt)
	c.Follow(anchor)
	c.animate(dt)
}

func (c *Coin) bob(dt float64) {
	if c.bobTimer < 0 {
		c.bobOffset += c.bobDir
		if core.Abs(c.bobOffset) >= c.cfg.BobAmplitude {
			c.bobDir = -c.bobDir
		}
		c.bobTimer = c.cfg.BobStep
		return
	}
	c.bobTimer -= dt
}

func (c *Coin) animate(dt float64) {
	if c.animTimer < 0 {
		c.frame = (c.frame + 1) % c.sprite.Frames
		c.animTimer = c.cfg.AnimationStep
		return
	}
	c.animTimer -= dt
}

// Rect returns the coin position.
func (c *Coin) Rect() core.Rect {
	return c.rect
}

// Frame returns the current animation frame.
func (c *Coin) Frame() int {
	return c.frame
}

// BobOffset returns the current vertical bob displacement.
func (c *Coin) BobOffset() int {
	return c.bobOffset
}

// Collider returns the coin's collision shape.
func (c *Coin) Collider() core.Collider {
	return core.Collider{Rect: c.rect, Mask: c.mask}
}
