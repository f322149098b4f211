package core

// Mask is a per-pixel collision bitmap. Set bits are solid, clear bits are
// transparent and never collide.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// NewRectMask creates a mask with every pixel solid.
func NewRectMask(w, h int) *Mask {
	m := NewMask(w, h)
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// NewCircleMask creates a mask of size w×h holding a solid disc of the given
// radius centered at (w/2, h/2). Pixels are sampled at their centers, so a disc
// of radius r spans exactly 2r pixels along each axis.
func NewCircleMask(w, h, radius int) *Mask {
	m := NewMask(w, h)
	cx, cy := w/2, h/2
	limit := 4 * radius * radius
	for y := 0; y < h; y++ {
		dy := 2*y + 1 - 2*cy
		for x := 0; x < w; x++ {
			dx := 2*x + 1 - 2*cx
			if dx*dx+dy*dy <= limit {
				m.bits[y*w+x] = true
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.w
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.h
}

// Overlaps reports whether any solid pixel of m coincides with a solid pixel of
// other when other's top-left corner sits at (dx, dy) relative to m's.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	x0 := Max(0, dx)
	y0 := Max(0, dy)
	x1 := Min(m.w, dx+other.w)
	y1 := Min(m.h, dy+other.h)

	for y := y0; y < y1; y++ {
		row := y * m.w
		otherRow := (y - dy) * other.w
		for x := x0; x < x1; x++ {
			if m.bits[row+x] && other.bits[otherRow+x-dx] {
				return true
			}
		}
	}
	return false
}

// Collider pairs a mask with the screen rectangle it occupies.
type Collider struct {
	Rect Rect
	Mask *Mask
}

// Collides performs a bounding-box rejection followed by an exact mask test.
func (c Collider) Collides(other Collider) bool {
	if !c.Rect.Intersects(other.Rect) {
		return false
	}
	return c.Mask.Overlaps(other.Mask, other.Rect.X-c.Rect.X, other.Rect.Y-c.Rect.Y)
}
