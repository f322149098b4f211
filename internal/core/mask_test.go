package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solidAt reports whether the pixel at (x, y) collides with a single solid pixel.
func solidAt(m *Mask, x, y int) bool {
	return m.Overlaps(NewRectMask(1, 1), x, y)
}

func solidCount(m *Mask) int {
	n := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if solidAt(m, x, y) {
				n++
			}
		}
	}
	return n
}

func TestCircleMaskShape(t *testing.T) {
	m := NewCircleMask(34, 24, 12)

	require.Equal(t, 34, m.Width())
	require.Equal(t, 24, m.Height())

	// Center is solid, corners (wing tips) are not.
	assert.True(t, solidAt(m, 17, 12))
	assert.False(t, solidAt(m, 0, 0))
	assert.False(t, solidAt(m, 33, 23))
	assert.False(t, solidAt(m, 0, 12), "left edge lies outside the inscribed circle")

	// Disc of radius 12 spans exactly 24 pixels across its center row.
	solid := 0
	for x := 0; x < m.Width(); x++ {
		if solidAt(m, x, 12) {
			solid++
		}
	}
	assert.Equal(t, 24, solid)
	assert.Less(t, solidCount(m), 34*24)
}

func TestRectMaskIsFullySolid(t *testing.T) {
	m := NewRectMask(5, 3)
	assert.Equal(t, 15, solidCount(m))
	assert.False(t, solidAt(m, 5, 0), "out of bounds is transparent")
	assert.Equal(t, 0, solidCount(NewMask(3, 3)))
}

func TestMaskOverlaps(t *testing.T) {
	block := NewRectMask(10, 10)
	disc := NewCircleMask(10, 10, 3)

	tests := []struct {
		name     string
		dx, dy   int
		expected bool
	}{
		{"same origin", 0, 0, true},
		{"far away", 20, 0, false},
		{"touching corner pixel of block but transparent disc corner", 9, 9, false},
		{"disc center inside block", 5, -5, true},
		{"adjacent", 10, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, block.Overlaps(disc, tc.dx, tc.dy))
		})
	}
}

func TestColliderRejectsTransparentOverlap(t *testing.T) {
	bird := Collider{Rect: NewRect(0, 0, 34, 24), Mask: NewCircleMask(34, 24, 12)}

	// A pipe touching only the bird's top-left corner overlaps the bounding box
	// but not the circular body.
	pipe := Collider{Rect: NewRect(-50, -50, 52, 52), Mask: NewRectMask(52, 52)}
	require.True(t, bird.Rect.Intersects(pipe.Rect))
	assert.False(t, bird.Collides(pipe))

	pipe.Rect = NewRect(10, -40, 52, 52)
	assert.True(t, bird.Collides(pipe))
	assert.True(t, pipe.Collides(bird))
}
