// Package config provides the YAML-backed configuration for the game.
// A Config is built once at startup and passed by value into every
// constructor; nothing in the game reads ambient global settings.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all gameplay and presentation settings.
type Config struct {
	Screen  Screen  `yaml:"screen"`
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	Pipes   Pipes   `yaml:"pipes"`
	Coin    Coin    `yaml:"coin"`
	Ground  Ground  `yaml:"ground"`
	Score   Score   `yaml:"score"`
	Audio   Audio   `yaml:"audio"`
}

// Screen defines the logical playfield and frame pacing.
type Screen struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	VerticalOffset int     `yaml:"vertical_offset"` // shifts the playfield centre up (negative) or down
	UIOffset       int     `yaml:"ui_offset"`       // extra vertical offset for overlay messages
	FPS            int     `yaml:"fps"`
	MaxFrameDelta  float64 `yaml:"max_frame_delta"` // seconds; longer frames are clamped by the frontend
	Scale          float64 `yaml:"scale"`           // window scale of the graphical frontend
}

// Physics defines world motion. Speeds are pixels per second, velocities are
// pixels per tick and gravity adds to velocity per second of elapsed time.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	ScrollSpeed      float64 `yaml:"scroll_speed"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
}

// Player defines bird animation.
type Player struct {
	AnimationStep float64 `yaml:"animation_step"` // seconds per wing frame
}

// Pipes defines obstacle geometry.
type Pipes struct {
	GapDistance  int `yaml:"gap_distance"`
	GapOffsetMin int `yaml:"gap_offset_min"`
	GapOffsetMax int `yaml:"gap_offset_max"`
}

// Coin defines coin animation and bobbing.
type Coin struct {
	AnimationStep float64 `yaml:"animation_step"`
	BobStep       float64 `yaml:"bob_step"`
	BobAmplitude  int     `yaml:"bob_amplitude"`
	MaskDivisor   int     `yaml:"mask_divisor"` // collision radius = min(w, h) / divisor
}

// Ground defines the scrolling floor.
type Ground struct {
	Offset int `yaml:"offset"` // how far the strip extends below the screen
}

// Score defines the digit layout of the score display.
type Score struct {
	GlyphSpacing int `yaml:"glyph_spacing"`
	OneKerning   int `yaml:"one_kerning"`
}

// Audio defines sound output.
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0..1
	SampleRate int     `yaml:"sample_rate"`
}

// BottomLimit returns the y coordinate a dying player comes to rest on.
func (s Screen) BottomLimit() int {
	return s.Height + 2*s.VerticalOffset
}

// FrameDuration returns the target duration of one frame in seconds.
func (s Screen) FrameDuration() float64 {
	if s.FPS <= 0 {
		return 0
	}
	return 1 / float64(s.FPS)
}

// Validate reports the first out-of-range value, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	case c.Screen.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.Screen.FPS)
	case c.Screen.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: max_frame_delta %v", ErrInvalidConfig, c.Screen.MaxFrameDelta)
	case c.Screen.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, c.Screen.Scale)
	case c.Screen.BottomLimit() <= 0:
		return fmt.Errorf("%w: vertical_offset %d leaves no playfield", ErrInvalidConfig, c.Screen.VerticalOffset)
	case c.Physics.ScrollSpeed < 0:
		return fmt.Errorf("%w: scroll_speed %v", ErrInvalidConfig, c.Physics.ScrollSpeed)
	case c.Physics.TerminalVelocity <= 0:
		return fmt.Errorf("%w: terminal_velocity %v", ErrInvalidConfig, c.Physics.TerminalVelocity)
	case c.Physics.JumpImpulse <= 0:
		return fmt.Errorf("%w: jump_impulse %v", ErrInvalidConfig, c.Physics.JumpImpulse)
	case c.Player.AnimationStep <= 0:
		return fmt.Errorf("%w: player.animation_step %v", ErrInvalidConfig, c.Player.AnimationStep)
	case c.Pipes.GapDistance <= 0:
		return fmt.Errorf("%w: gap_distance %d", ErrInvalidConfig, c.Pipes.GapDistance)
	case c.Pipes.GapOffsetMin > c.Pipes.GapOffsetMax:
		return fmt.Errorf("%w: gap offset bounds [%d, %d]", ErrInvalidConfig, c.Pipes.GapOffsetMin, c.Pipes.GapOffsetMax)
	case c.Coin.AnimationStep <= 0 || c.Coin.BobStep <= 0:
		return fmt.Errorf("%w: coin steps %v/%v", ErrInvalidConfig, c.Coin.AnimationStep, c.Coin.BobStep)
	case c.Coin.BobAmplitude < 1:
		return fmt.Errorf("%w: bob_amplitude %d", ErrInvalidConfig, c.Coin.BobAmplitude)
	case c.Coin.MaskDivisor < 1:
		return fmt.Errorf("%w: mask_divisor %d", ErrInvalidConfig, c.Coin.MaskDivisor)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v", ErrInvalidConfig, c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	return nil
}
