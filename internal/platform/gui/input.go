package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Input is a snapshot of the buttons pressed during one tick.
type Input struct {
	LeftClick  bool
	RightClick bool
	Flap       bool // space or up
	Restart    bool // r
	Pause      bool
	Quit       bool
}

// pollInput reads the presses of the current tick from ebiten.
func pollInput() Input {
	return Input{
		LeftClick:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Flap: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Events converts the snapshot to game events. Quit comes first so nothing
// else is acted on in the frame the window closes.
func (in Input) Events() []core.Event {
	var out []core.Event
	if in.Quit {
		out = append(out, core.EventQuit)
	}
	if in.Pause {
		out = append(out, core.EventPause)
	}
	if in.LeftClick || in.Flap {
		out = append(out, core.EventPrimary)
	}
	if in.RightClick || in.Restart {
		out = append(out, core.EventSecondary)
	}
	return out
}
