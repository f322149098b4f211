// Package gui runs the game in a desktop window with ebiten.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

// Options configure a window session.
type Options struct {
	Sink     audio.Sink       // defaults to a silent sink feeding Queue
	Queue    *core.EventQueue // events from outside the game loop, e.g. audio
	Recorder *replay.Recorder // optional
	Logger   *log.Logger
}

// App implements ebiten.Game around a flappy.Game.
type App struct {
	game     *flappy.Game
	queue    *core.EventQueue
	sink     audio.Sink
	recorder *replay.Recorder
	logger   *log.Logger

	dt         float64
	width      int
	height     int
	palette    assets.Palette
	coinFrames int
}

// NewApp wires a game to the window loop.
func NewApp(game *flappy.Game, opts Options) *App {
	if opts.Queue == nil {
		opts.Queue = core.NewEventQueue()
	}
	if opts.Sink == nil {
		q := opts.Queue
		opts.Sink = audio.Silent{OnPriorityDone: func() { q.Push(core.EventPriorityFinished) }}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg := game.Config()
	set := game.Assets()
	return &App{
		game:       game,
		queue:      opts.Queue,
		sink:       opts.Sink,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
		dt:         1 / float64(cfg.Screen.FPS),
		width:      cfg.Screen.Width,
		height:     cfg.Screen.Height,
		palette:    set.Theme.Palette(),
		coinFrames: set.Coin.Frames,
	}
}

// Update runs one frame. ebiten calls it at a fixed rate, so dt is constant.
func (a *App) Update() error {
	for _, e := range pollInput().Events() {
		a.queue.Push(e)
	}
	return a.step()
}

func (a *App) step() error {
	events := a.queue.Drain()
	frame := a.game.Step(events, a.dt)
	if a.recorder != nil {
		a.recorder.Record(events, a.dt)
	}
	audio.PlayAll(a.sink, frame.Sounds)

	if a.game.Done() {
		a.logger.Debug("game exited", "score", frame.Score)
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current draw requests.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(a.palette.Sky))
	for _, d := range a.game.Draws() {
		a.draw(screen, d)
	}
}

// Layout keeps the logical resolution; ebiten scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func (a *App) draw(screen *ebiten.Image, d core.DrawRequest) {
	x, y := float32(d.Rect.X), float32(d.Rect.Y)
	w, h := float32(d.Rect.W), float32(d.Rect.H)

	switch d.Visual {
	case core.VisualPipe:
		vector.DrawFilledRect(screen, x, y, w, h, rgba(a.palette.PipeShade), false)
		vector.DrawFilledRect(screen, x+4, y, w-8, h, rgba(a.palette.Pipe), false)
		lipY := y
		if d.FlipY {
			lipY = y + h - 24
		}
		vector.DrawFilledRect(screen, x, lipY, w, 24, rgba(a.palette.PipeShade), false)
		vector.DrawFilledRect(screen, x+2, lipY+2, w-4, 20, rgba(a.palette.Pipe), false)

	case core.VisualGround:
		vector.DrawFilledRect(screen, x, y, w, h, rgba(a.palette.Ground), false)
		vector.DrawFilledRect(screen, x, y, w, 12, rgba(a.palette.Grass), false)

	case core.VisualCoin:
		squeeze := float32(1)
		if a.coinFrames > 0 {
			squeeze = float32(math.Abs(math.Cos(float64(d.Frame) * math.Pi / float64(a.coinFrames))))
		}
		cx := x + w/2
		if squeeze > 0.9 {
			vector.DrawFilledCircle(screen, cx, y+h/2, h/2, rgba(a.palette.Coin), true)
			return
		}
		cw := max(w*squeeze, 3)
		vector.DrawFilledRect(screen, cx-cw/2, y+2, cw, h-4, rgba(a.palette.Coin), false)

	case core.VisualPlayer:
		cx, cy := x+w/2, y+h/2
		vector.DrawFilledCircle(screen, cx, cy, h/2, rgba(a.palette.Bird), true)
		vector.DrawFilledRect(screen, x+w*0.75, cy-3, w*0.25, 6, rgba(a.palette.Beak), false)
		// Wing position follows the animation frame.
		wingY := cy + float32(wingOffset(d.Frame))
		vector.DrawFilledCircle(screen, cx-w/6, wingY, h/5, rgba(a.palette.Shadow), true)

	case core.VisualDigit:
		ebitenutil.DebugPrintAt(screen, fmt.Sprint(d.Frame), d.Rect.CenterX()-3, d.Rect.CenterY()-8)

	case core.VisualGetReady:
		a.banner(screen, d.Rect, "GET READY", "click or press space")

	case core.VisualGameOver:
		a.banner(screen, d.Rect, "GAME OVER", "right click or r to restart")
	}
}

func (a *App) banner(screen *ebiten.Image, r core.Rect, title, hint string) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		color.RGBA{A: 96}, false)
	// The debug font is 6 px wide and 16 px tall.
	ebitenutil.DebugPrintAt(screen, title, r.CenterX()-len(title)*3, r.CenterY()-16)
	ebitenutil.DebugPrintAt(screen, hint, r.CenterX()-len(hint)*3, r.CenterY())
}

// wingOffset maps the wing cycle (down, mid, up, mid) to a vertical offset.
func wingOffset(frame int) int {
	switch assets.PlayerWings[frame%len(assets.PlayerWings)] {
	case assets.WingDown:
		return 3
	case assets.WingUp:
		return -3
	}
	return 0
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Run opens the window and blocks until the game exits or the window closes.
func Run(game *flappy.Game, opts Options) error {
	cfg := game.Config().Screen

	ebiten.SetWindowSize(
		int(float64(cfg.Width)*cfg.Scale),
		int(float64(cfg.Height)*cfg.Scale),
	)
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(NewApp(game, opts)); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
