// Package assets describes the visuals the game needs: sprite sizes, frame
// counts and the per-session colour theme. The simulation only uses sizes and
// frame counts; frontends use the theme to paint shapes.
package assets

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrInvalidAssets is returned when a sprite description cannot be used.
var ErrInvalidAssets = errors.New("invalid assets")

// Sprite describes a sprite sheet with equally sized frames.
type Sprite struct {
	W, H   int
	Frames int
}

// Rect returns the sprite bounds placed at the origin.
func (s Sprite) Rect() core.Rect {
	return core.NewRect(0, 0, s.W, s.H)
}

func (s Sprite) validate(name string) error {
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("%w: %s has size %dx%d", ErrInvalidAssets, name, s.W, s.H)
	}
	if s.Frames <= 0 {
		return fmt.Errorf("%w: %s has no frames", ErrInvalidAssets, name)
	}
	return nil
}

// Wing is the wing position shown by a player frame.
type Wing int

const (
	WingDown Wing = iota
	WingMid
	WingUp
)

// PlayerWings maps player frame indices to wing positions.
var PlayerWings = []Wing{WingDown, WingMid, WingUp, WingMid}

// Set holds every visual used by a session.
type Set struct {
	Theme    Theme
	Player   Sprite
	Pipe     Sprite
	Coin     Sprite
	Ground   Sprite
	Digits   [10]Sprite
	GetReady Sprite
	GameOver Sprite
}

// Standard returns the classic sprite sizes with the given theme.
func Standard(theme Theme) Set {
	s := Set{
		Theme:    theme,
		Player:   Sprite{W: 34, H: 24, Frames: len(PlayerWings)},
		Pipe:     Sprite{W: 52, H: 320, Frames: 1},
		Coin:     Sprite{W: 32, H: 32, Frames: 14},
		Ground:   Sprite{W: 336, H: 112, Frames: 1},
		GetReady: Sprite{W: 184, H: 267, Frames: 1},
		GameOver: Sprite{W: 192, H: 42, Frames: 1},
	}
	for d := range s.Digits {
		s.Digits[d] = Sprite{W: 24, H: 36, Frames: 1}
	}
	s.Digits[1].W = 16
	return s
}

// Classic returns the standard sprites with a randomly chosen theme.
func Classic(rng *rand.Rand) Set {
	return Standard(RandomTheme(rng))
}

// Validate checks that every sprite has a positive size and at least one frame.
func (s Set) Validate() error {
	checks := []struct {
		name   string
		sprite Sprite
	}{
		{"player", s.Player},
		{"pipe", s.Pipe},
		{"coin", s.Coin},
		{"ground", s.Ground},
		{"get ready", s.GetReady},
		{"game over", s.GameOver},
	}
	for _, c := range checks {
		if err := c.sprite.validate(c.name); err != nil {
			return err
		}
	}
	for d, digit := range s.Digits {
		if err := digit.validate(fmt.Sprintf("digit %d", d)); err != nil {
			return err
		}
	}
	return nil
}
