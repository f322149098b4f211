package assets

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Background is the sky variant.
type Background string

const (
	BackgroundDay   Background = "day"
	BackgroundNight Background = "night"
)

// BirdColor is the player colour variant.
type BirdColor string

const (
	BirdYellow BirdColor = "yellow"
	BirdBlue   BirdColor = "blue"
	BirdRed    BirdColor = "red"
)

// PipeColor is the obstacle colour variant.
type PipeColor string

const (
	PipeGreen PipeColor = "green"
	PipeRed   PipeColor = "red"
)

// CoinColor is the coin colour variant.
type CoinColor string

const (
	CoinGold   CoinColor = "gold"
	CoinSilver CoinColor = "silver"
)

// Theme is the colour scheme of a session.
type Theme struct {
	Background Background
	Bird       BirdColor
	Pipe       PipeColor
	Coin       CoinColor
}

// DefaultTheme is the day theme with a yellow bird, green pipes and gold coins.
var DefaultTheme = Theme{
	Background: BackgroundDay,
	Bird:       BirdYellow,
	Pipe:       PipeGreen,
	Coin:       CoinGold,
}

// RandomTheme picks each variant uniformly at random.
func RandomTheme(rng *rand.Rand) Theme {
	backgrounds := []Background{BackgroundDay, BackgroundNight}
	birds := []BirdColor{BirdYellow, BirdBlue, BirdRed}
	pipes := []PipeColor{PipeGreen, PipeRed}
	coins := []CoinColor{CoinGold, CoinSilver}

	return Theme{
		Background: backgrounds[rng.Intn(len(backgrounds))],
		Bird:       birds[rng.Intn(len(birds))],
		Pipe:       pipes[rng.Intn(len(pipes))],
		Coin:       coins[rng.Intn(len(coins))],
	}
}

// Palette is the set of colours frontends paint with.
type Palette struct {
	Sky       core.Color
	Bird      core.Color
	Beak      core.Color
	Pipe      core.Color
	PipeShade core.Color
	Coin      core.Color
	Ground    core.Color
	Grass     core.Color
	Text      core.Color
	Shadow    core.Color
}

// Palette resolves the theme into concrete colours.
func (t Theme) Palette() Palette {
	p := Palette{
		Sky:       core.ColorSkyDay,
		Bird:      core.ColorYellow,
		Beak:      core.ColorOrange,
		Pipe:      core.ColorPipeGreen,
		PipeShade: core.ColorPipeShade,
		Coin:      core.ColorCoinGold,
		Ground:    core.ColorGround,
		Grass:     core.ColorGrass,
		Text:      core.ColorWhite,
		Shadow:    core.ColorBlack,
	}
	if t.Background == BackgroundNight {
		p.Sky = core.ColorSkyNight
	}
	switch t.Bird {
	case BirdBlue:
		p.Bird = core.ColorBlue
	case BirdRed:
		p.Bird = core.ColorRed
	}
	if t.Pipe == PipeRed {
		p.Pipe = core.ColorPipeRed
	}
	if t.Coin == CoinSilver {
		p.Coin = core.ColorCoinSilver
	}
	return p
}
