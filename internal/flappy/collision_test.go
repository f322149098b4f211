package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func block(x, y, w, h int) core.Collider {
	return core.Collider{Rect: core.NewRect(x, y, w, h), Mask: core.NewRectMask(w, h)}
}

func TestResolvePrefersLethalTargets(t *testing.T) {
	player := core.Collider{Rect: core.NewRect(0, 0, 34, 24), Mask: core.NewCircleMask(34, 24, 12)}

	targets := []HitTarget{
		{Kind: TargetCoin, Obstacle: 0, Collider: block(10, 5, 10, 10)},
		{Kind: TargetPipe, Obstacle: 0, Index: 1, Collider: block(20, 0, 30, 30)},
	}

	hit, ok := Resolve(player, targets)
	require.True(t, ok)
	assert.Equal(t, TargetPipe, hit.Kind, "pipe wins over a coin listed first")
	assert.Equal(t, 1, hit.Index)
}

func TestResolveGroundBeforePipe(t *testing.T) {
	player := core.Collider{Rect: core.NewRect(0, 0, 34, 24), Mask: core.NewCircleMask(34, 24, 12)}

	targets := []HitTarget{
		{Kind: TargetGround, Obstacle: -1, Collider: block(0, 20, 100, 100)},
		{Kind: TargetPipe, Collider: block(15, -100, 10, 110)},
	}

	hit, ok := Resolve(player, targets)
	require.True(t, ok)
	assert.Equal(t, TargetGround, hit.Kind)
}

func TestResolveIgnoresTransparentPixels(t *testing.T) {
	player := core.Collider{Rect: core.NewRect(0, 0, 34, 24), Mask: core.NewCircleMask(34, 24, 12)}
	corner := HitTarget{Kind: TargetPipe, Collider: block(-10, -10, 12, 12)}

	_, ok := Resolve(player, []HitTarget{corner})
	assert.False(t, ok, "bounding boxes overlap only at the transparent corner")
}

func TestResolveEmpty(t *testing.T) {
	_, ok := Resolve(block(0, 0, 1, 1), nil)
	assert.False(t, ok)
}

func TestTargetKind(t *testing.T) {
	assert.True(t, TargetGround.Lethal())
	assert.True(t, TargetPipe.Lethal())
	assert.False(t, TargetCoin.Lethal())
	assert.Equal(t, "coin", TargetCoin.String())
}
