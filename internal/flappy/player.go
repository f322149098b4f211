package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player is the bird.
//
// Velocity is in pixels per tick and is applied rounded, so positions stay on
// whole pixels. Gravity adds to velocity in proportion to elapsed time.
type Player struct {
	cfg    config.Config
	sprite assets.Sprite
	mask   *core.Mask

	rect     core.Rect
	velocity float64
	state    PlayerState
	flipped  bool

	frame     int
	animTimer float64
}

// NewPlayer places an idle bird a quarter of the way across the screen, level
// with the playfield centre.
func NewPlayer(cfg config.Config, sprite assets.Sprite) *Player {
	p := &Player{
		cfg:       cfg,
		sprite:    sprite,
		mask:      core.NewCircleMask(sprite.W, sprite.H, core.Min(sprite.W, sprite.H)/2),
		rect:      sprite.Rect(),
		state:     PlayerIdle,
		animTimer: cfg.Player.AnimationStep,
	}
	p.rect.SetCenterX(cfg.Screen.Width / 4)
	p.rect.SetCenterY(cfg.Screen.Height/2 + cfg.Screen.VerticalOffset)
	return p
}

// Start switches an idle bird to flying.
func (p *Player) Start() {
	if p.state == PlayerIdle {
		p.state = PlayerFlying
	}
}

// Flap sets the upward impulse, cancelling any fall. It reports whether the
// wing sound should play, which is never the case while dying.
func (p *Player) Flap() bool {
	if p.state == PlayerDead {
		return false
	}
	p.velocity = -p.cfg.Physics.JumpImpulse
	return p.state != PlayerDying
}

// HandleDeath starts the death fall: one upward kick, sprite upside down and
// frozen wings. Calls after the first are ignored.
func (p *Player) HandleDeath() bool {
	if p.state == PlayerDying || p.state == PlayerDead {
		return false
	}
	p.state = PlayerDying
	p.Flap()
	p.flipped = true
	return true
}

// Update applies physics while flying or dying and animates while idle or
// flying. A dead bird does not change.
func (p *Player) Update(dt float64) {
	if p.state == PlayerFlying || p.state == PlayerDying {
		p.move(dt)
	}
	if p.state == PlayerIdle || p.state == PlayerFlying {
		p.animate(dt)
	}
}

func (p *Player) move(dt float64) {
	p.velocity += p.cfg.Physics.Gravity * dt
	if p.velocity > p.cfg.Physics.TerminalVelocity {
		p.velocity = p.cfg.Physics.TerminalVelocity
	}

	step := int(math.RoundToEven(p.velocity))
	if p.rect.Y+step > 0 {
		p.rect.Y += step
	} else {
		p.velocity = 0
	}

	limit := p.cfg.Screen.BottomLimit()
	if p.state == PlayerDying && p.rect.Bottom() > limit && p.velocity >= 0 {
		p.state = PlayerDead
		p.rect.SetBottom(limit)
	}
}

func (p *Player) animate(dt float64) {
	if p.animTimer < 0 {
		p.frame = (p.frame + 1) % p.sprite.Frames
		p.animTimer = p.cfg.Player.AnimationStep
		return
	}
	p.animTimer -= dt
}

// State returns the life-cycle state.
func (p *Player) State() PlayerState {
	return p.state
}

// Rect returns the sprite rectangle.
func (p *Player) Rect() core.Rect {
	return p.rect
}

// Velocity returns the vertical velocity in pixels per tick.
func (p *Player) Velocity() float64 {
	return p.velocity
}

// Frame returns the current animation frame.
func (p *Player) Frame() int {
	return p.frame
}

// Flipped reports whether the sprite is drawn upside down.
func (p *Player) Flipped() bool {
	return p.flipped
}

// Collider returns the circular collision shape inscribed in the sprite.
func (p *Player) Collider() core.Collider {
	return core.Collider{Rect: p.rect, Mask: p.mask}
}
