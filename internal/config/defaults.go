package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/flappy.yaml.
func Default() Config {
	return Config{
		Screen: Screen{
			Width:          288,
			Height:         512,
			VerticalOffset: -42,
			UIOffset:       60,
			FPS:            120,
			MaxFrameDelta:  0.1,
			Scale:          1.5,
		},
		Physics: Physics{
			Gravity:          7,
			ScrollSpeed:      150,
			JumpImpulse:      2,
			TerminalVelocity: 10,
		},
		Player: Player{
			AnimationStep: 0.075,
		},
		Pipes: Pipes{
			GapDistance:  100,
			GapOffsetMin: -132,
			GapOffsetMax: 48,
		},
		Coin: Coin{
			AnimationStep: 0.020,
			BobStep:       0.050,
			BobAmplitude:  5,
			MaskDivisor:   3,
		},
		Ground: Ground{
			Offset: 28,
		},
		Score: Score{
			GlyphSpacing: 1,
			OneKerning:   4,
		},
		Audio: Audio{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
