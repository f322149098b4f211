package flappy

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Glyph is one digit of the score, positioned relative to the display.
type Glyph struct {
	Digit int
	X     int
}

// ScoreDisplay lays out the score as a row of digit sprites centred at the
// top of the screen.
type ScoreDisplay struct {
	digits      [10]assets.Sprite
	kerning     int
	numberWidth int
	screenW     int
	y           int

	glyphs   []Glyph
	rect     core.Rect
	rebuilds int
}

// NewScoreDisplay creates an empty display.
func NewScoreDisplay(cfg config.Config, digits [10]assets.Sprite) *ScoreDisplay {
	return &ScoreDisplay{
		digits:      digits,
		kerning:     cfg.Score.OneKerning,
		numberWidth: digits[0].W + cfg.Score.GlyphSpacing,
		screenW:     cfg.Screen.Width,
		y:           core.Abs(cfg.Screen.VerticalOffset) / 2,
	}
}

// Set shows score. Scores are never negative; a negative value is a
// programming error and panics.
func (s *ScoreDisplay) Set(score int) {
	s.SetText(strconv.Itoa(score))
}

// SetText shows a string of decimal digits. The glyph buffer is reallocated
// only when the number of digits changes. Any other character panics.
func (s *ScoreDisplay) SetText(text string) {
	for _, ch := range text {
		if ch < '0' || ch > '9' {
			panic(fmt.Sprintf("flappy: score digit %q out of range", ch))
		}
	}

	if len(text) != len(s.glyphs) {
		s.glyphs = make([]Glyph, len(text))
		s.rebuilds++
	}
	for i, ch := range []byte(text) {
		d := int(ch - '0')
		x := i * s.numberWidth
		if d == 1 {
			x += s.kerning
		}
		s.glyphs[i] = Glyph{Digit: d, X: x}
	}

	s.rect = core.NewRect(0, s.y, len(text)*s.numberWidth, s.digits[0].H)
	s.rect.SetCenterX(s.screenW / 2)
}

// Glyphs returns the digits in display order.
func (s *ScoreDisplay) Glyphs() []Glyph {
	return s.glyphs
}

// Rect returns the bounds of the whole number on screen.
func (s *ScoreDisplay) Rect() core.Rect {
	return s.rect
}

// Rebuilds returns how many times the glyph buffer was reallocated.
func (s *ScoreDisplay) Rebuilds() int {
	return s.rebuilds
}

// Draws returns one draw request per digit.
func (s *ScoreDisplay) Draws() []core.DrawRequest {
	out := make([]core.DrawRequest, 0, len(s.glyphs))
	for _, g := range s.glyphs {
		sprite := s.digits[g.Digit]
		out = append(out, core.DrawRequest{
			Visual: core.VisualDigit,
			Frame:  g.Digit,
			Rect:   core.NewRect(s.rect.X+g.X, s.rect.Y, sprite.W, sprite.H),
			Layer:  core.LayerScore,
		})
	}
	return out
}
