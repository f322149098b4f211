package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// upperHalf paints the top sample with the foreground and the bottom one with
// the background, giving two square-ish pixels per terminal cell.
const upperHalf = '▀'

// Viewport maps game pixels onto half-block terminal pixels, keeping the
// aspect ratio and centering the picture.
type Viewport struct {
	Scale   float64 // terminal pixels per game pixel
	OffsetX float64 // in terminal pixels
	OffsetY float64
}

// NewViewport fits a gameW×gameH picture into cols×rows cells.
func NewViewport(gameW, gameH, cols, rows int) Viewport {
	pxW, pxH := float64(cols), float64(rows*2)
	scale := math.Min(pxW/float64(gameW), pxH/float64(gameH))
	return Viewport{
		Scale:   scale,
		OffsetX: (pxW - float64(gameW)*scale) / 2,
		OffsetY: (pxH - float64(gameH)*scale) / 2,
	}
}

// ToGame returns the game coordinate sampled by terminal pixel (px, py).
func (v Viewport) ToGame(px, py int) (float64, float64) {
	return (float64(px) + 0.5 - v.OffsetX) / v.Scale,
		(float64(py) + 0.5 - v.OffsetY) / v.Scale
}

// ToCell returns the terminal cell showing game coordinate (x, y).
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x*v.Scale + v.OffsetX)),
		int(math.Floor((y*v.Scale + v.OffsetY) / 2))
}

// Rasterizer turns draw requests into coloured terminal cells.
type Rasterizer struct {
	gameW, gameH int
	palette      assets.Palette
	coinFrames   int
}

// NewRasterizer creates a rasterizer for a game of the given size.
func NewRasterizer(gameW, gameH int, set assets.Set) *Rasterizer {
	return &Rasterizer{
		gameW:      gameW,
		gameH:      gameH,
		palette:    set.Theme.Palette(),
		coinFrames: set.Coin.Frames,
	}
}

// Draw renders the requests into the screen. Requests are expected in layer
// order; later ones paint over earlier ones.
func (r *Rasterizer) Draw(s *core.Screen, draws []core.DrawRequest) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 {
		return
	}
	vp := NewViewport(r.gameW, r.gameH, s.Width(), s.Height())

	for cy := range s.Height() {
		for cx := range s.Width() {
			top, okTop := r.sample(vp, draws, cx, cy*2)
			bottom, okBottom := r.sample(vp, draws, cx, cy*2+1)
			if !okTop && !okBottom {
				continue
			}
			s.SetCell(cx, cy, core.Cell{Rune: upperHalf, Fg: top, Bg: bottom})
		}
	}

	for _, d := range draws {
		r.drawText(s, vp, d)
	}
}

// sample returns the colour of terminal pixel (px, py), or false when it lies
// outside the game area.
func (r *Rasterizer) sample(vp Viewport, draws []core.DrawRequest, px, py int) (core.Color, bool) {
	x, y := vp.ToGame(px, py)
	if x < 0 || y < 0 || x >= float64(r.gameW) || y >= float64(r.gameH) {
		return core.ColorDefault, false
	}

	c := r.palette.Sky
	for _, d := range draws {
		if col, ok := r.shade(d, x, y); ok {
			c = col
		}
	}
	return c, true
}

// shade returns the colour a request paints at game point (x, y).
func (r *Rasterizer) shade(d core.DrawRequest, x, y float64) (core.Color, bool) {
	rect := d.Rect
	lx, ly := x-float64(rect.X), y-float64(rect.Y)
	w, h := float64(rect.W), float64(rect.H)
	if lx < 0 || ly < 0 || lx >= w || ly >= h {
		return 0, false
	}

	switch d.Visual {
	case core.VisualPipe:
		// A seam marks the lip at the open end of the pipe.
		seam := 22.0
		if d.FlipY {
			seam = h - 22
		}
		if lx < 4 || lx >= w-4 || math.Abs(ly-seam) < 2 {
			return r.palette.PipeShade, true
		}
		return r.palette.Pipe, true

	case core.VisualGround:
		if ly < 12 {
			return r.palette.Grass, true
		}
		return r.palette.Ground, true

	case core.VisualCoin:
		// The spin squeezes the coin horizontally.
		squeeze := 1.0
		if r.coinFrames > 0 {
			squeeze = math.Abs(math.Cos(float64(d.Frame) * math.Pi / float64(r.coinFrames)))
		}
		squeeze = math.Max(squeeze, 0.15)
		if inEllipse(lx, ly, w*squeeze, h, w/2, h/2) {
			return r.palette.Coin, true
		}

	case core.VisualPlayer:
		if !inEllipse(lx, ly, w, h, w/2, h/2) {
			return 0, false
		}
		if lx > w*0.75 {
			return r.palette.Beak, true
		}
		return r.palette.Bird, true

	case core.VisualGetReady, core.VisualGameOver:
		if ly < 4 || ly >= h-4 || lx < 4 || lx >= w-4 {
			return r.palette.Shadow, true
		}
	}
	return 0, false
}

// drawText places the glyphs that are too small to rasterize.
func (r *Rasterizer) drawText(s *core.Screen, vp Viewport, d core.DrawRequest) {
	var text string
	switch d.Visual {
	case core.VisualDigit:
		text = string(rune('0' + d.Frame))
	case core.VisualGetReady:
		text = "GET READY"
	case core.VisualGameOver:
		text = "GAME OVER"
	default:
		return
	}

	cx, cy := vp.ToCell(float64(d.Rect.CenterX()), float64(d.Rect.CenterY()))
	x := cx - len(text)/2
	for i := range len(text) {
		if cell := s.GetCell(x+i, cy); cell.Bg == core.ColorDefault {
			cell.Bg = r.palette.Shadow
			s.SetCell(x+i, cy, cell)
		}
	}
	s.DrawText(x, cy, text, r.palette.Text)
}

// inEllipse reports whether (x, y) is inside the ellipse of width w and
// height h centred at (cx, cy).
func inEllipse(x, y, w, h, cx, cy float64) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	dx := (x - cx) / (w / 2)
	dy := (y - cy) / (h / 2)
	return dx*dx+dy*dy <= 1
}
