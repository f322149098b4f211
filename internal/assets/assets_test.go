package assets

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestStandardSizes(t *testing.T) {
	s := Standard(DefaultTheme)

	require.NoError(t, s.Validate())
	assert.Equal(t, Sprite{W: 34, H: 24, Frames: 4}, s.Player)
	assert.Equal(t, Sprite{W: 52, H: 320, Frames: 1}, s.Pipe)
	assert.Equal(t, 14, s.Coin.Frames)
	assert.Equal(t, 336, s.Ground.W)
	assert.Equal(t, 16, s.Digits[1].W)
	assert.Equal(t, 24, s.Digits[0].W)
	assert.Equal(t, core.NewRect(0, 0, 192, 42), s.GameOver.Rect())
}

func TestValidateRejectsBrokenSprites(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Set)
	}{
		{"player without frames", func(s *Set) { s.Player.Frames = 0 }},
		{"coin without frames", func(s *Set) { s.Coin.Frames = 0 }},
		{"zero sized pipe", func(s *Set) { s.Pipe.W = 0 }},
		{"broken digit", func(s *Set) { s.Digits[7].H = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Standard(DefaultTheme)
			tc.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidAssets)
		})
	}
}

func TestRandomThemeIsSeeded(t *testing.T) {
	a := RandomTheme(rand.New(rand.NewSource(7)))
	b := RandomTheme(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)

	seen := map[Background]bool{}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		seen[Classic(rng).Theme.Background] = true
	}
	assert.Len(t, seen, 2, "both backgrounds appear over many sessions")
}

func TestPalette(t *testing.T) {
	p := DefaultTheme.Palette()
	assert.Equal(t, core.ColorSkyDay, p.Sky)
	assert.Equal(t, core.ColorYellow, p.Bird)

	night := Theme{Background: BackgroundNight, Bird: BirdRed, Pipe: PipeRed, Coin: CoinSilver}.Palette()
	assert.Equal(t, core.ColorSkyNight, night.Sky)
	assert.Equal(t, core.ColorRed, night.Bird)
	assert.Equal(t, core.ColorPipeRed, night.Pipe)
	assert.Equal(t, core.ColorCoinSilver, night.Coin)
}
