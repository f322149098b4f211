// Package flappy implements the Flappy Bird simulation.
//
// The game is a pure state machine: a frontend feeds it input events and the
// elapsed time of each frame, and gets back declarative draw and sound
// requests. It never touches the terminal, a window or an audio device, so the
// same session can run in the TUI, in a window, or headless in a replay.
package flappy

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Frame is the outcome of one simulation step.
type Frame struct {
	State       GameState
	PlayerState PlayerState
	Score       int
	Draws       []core.DrawRequest
	Sounds      []core.SoundRequest
}

// Game orchestrates a session: top-level state, the current level and the
// per-frame update order.
type Game struct {
	cfg    config.Config
	assets assets.Set
	rng    *rand.Rand
	seed   int64
	logger *log.Logger

	state  GameState
	level  *Level
	sounds []core.SoundRequest
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSeed makes gap offsets reproducible.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// New validates the configuration and assets and creates a game in IDLE with
// a fresh level.
func New(cfg config.Config, set assets.Set, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if set.Ground.W < cfg.Screen.Width {
		return nil, fmt.Errorf("flappy: %w: ground width %d is narrower than the screen (%d)",
			assets.ErrInvalidAssets, set.Ground.W, cfg.Screen.Width)
	}

	g := &Game{
		cfg:    cfg,
		assets: set,
		seed:   time.Now().UnixNano(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	g.Reset()
	return g, nil
}

// Reset creates a fresh level: new player, ground and obstacles, score 0,
// state IDLE. It is valid in any state.
func (g *Game) Reset() {
	g.level = newLevel(g.cfg, g.assets, g.rng)
	g.setState(StateIdle)
	g.logger.Info("fresh level", "obstacles", len(g.level.Obstacles))
}

func (g *Game) setState(s GameState) {
	if g.state == s {
		return
	}
	g.logger.Debug("state changed", "from", g.state, "to", s)
	g.state = s
}

func (g *Game) play(s core.SoundRequest) {
	g.sounds = append(g.sounds, s)
}

// HandleEvent applies one input event.
func (g *Game) HandleEvent(e core.Event) {
	if g.state == StateExit {
		return
	}
	l := g.level

	switch e {
	case core.EventQuit:
		g.setState(StateExit)

	case core.EventPause:
		switch g.state {
		case StateRunning:
			g.setState(StatePaused)
		case StatePaused:
			g.setState(StateRunning)
		}

	case core.EventPrimary:
		switch g.state {
		case StateIdle:
			g.setState(StateRunning)
			l.Player.Start()
			l.ScoreVisible = true
			g.flap()
		case StateRunning:
			g.flap()
		}

	case core.EventSecondary:
		if g.state == StateGameOver && l.Player.State() == PlayerDead {
			g.play(core.SoundRequest{Sound: core.SoundSwoosh})
			g.Reset()
		}

	case core.EventPriorityFinished:
		if req, ok := l.Audio.Notify(); ok {
			g.play(req)
		}
	}
}

func (g *Game) flap() {
	if g.level.Player.Flap() {
		g.play(core.SoundRequest{Sound: core.SoundWing})
	}
}

// Update advances the simulation by dt seconds.
//
// IDLE and RUNNING move the player, the ground and the coins; obstacles only
// scroll and collisions are only resolved while RUNNING. GAMEOVER moves the
// player until it is dead. PAUSED and EXIT change nothing.
func (g *Game) Update(dt float64) {
	l := g.level

	switch g.state {
	case StateIdle, StateRunning:
		running := g.state == StateRunning

		l.Player.Update(dt)
		l.Ground.Advance(dt)
		for _, o := range l.Obstacles {
			if running {
				o.Advance(dt)
				if o.OffScreen() {
					o.Recycle(g.rng)
				}
			}
			o.coin.Update(o.anchor, dt)
		}

		if running {
			g.resolveCollisions()
		}

	case StateGameOver:
		if l.Player.State() != PlayerDead {
			l.Player.Update(dt)
		}
	}
}

// resolveCollisions handles at most one collision per frame.
func (g *Game) resolveCollisions() {
	l := g.level

	hit, ok := Resolve(l.Player.Collider(), l.hitSet())
	if !ok {
		return
	}

	if hit.Kind == TargetCoin {
		l.Obstacles[hit.Obstacle].collected = true
		l.Score++
		l.ScoreDisplay.Set(l.Score)
		g.play(core.SoundRequest{Sound: core.SoundPoint})
		g.logger.Debug("coin collected", "score", l.Score)
		return
	}

	if req, ok := l.Audio.Start(); ok {
		g.play(req)
	}
	g.setState(StateGameOver)
	l.Player.HandleDeath()
	g.logger.Debug("player hit", "target", hit.Kind, "score", l.Score)
}

// Step drains one frame of input, advances the simulation and returns what
// to draw and play. Once the game reached EXIT nothing is updated or drawn.
func (g *Game) Step(events []core.Event, dt float64) Frame {
	for _, e := range events {
		g.HandleEvent(e)
	}
	if g.state != StateExit {
		g.Update(dt)
	}

	f := Frame{
		State:       g.state,
		PlayerState: g.level.Player.State(),
		Score:       g.level.Score,
		Sounds:      g.sounds,
	}
	g.sounds = nil
	if g.state != StateExit {
		f.Draws = g.Draws()
	}
	return f
}

// Draws returns the draw requests for the current state, ordered by layer.
func (g *Game) Draws() []core.DrawRequest {
	out := g.level.draws()

	switch {
	case g.state == StateIdle:
		out = append(out, g.overlay(core.VisualGetReady, g.assets.GetReady))
	case g.state == StateGameOver && g.level.Player.State() == PlayerDead:
		out = append(out, g.overlay(core.VisualGameOver, g.assets.GameOver))
	}
	return out
}

func (g *Game) overlay(v core.Visual, sprite assets.Sprite) core.DrawRequest {
	s := g.cfg.Screen
	return core.DrawRequest{
		Visual: v,
		Rect: core.NewRect(
			s.Width/2-sprite.W/2,
			s.Height/2-sprite.H/2+s.VerticalOffset+s.UIOffset,
			sprite.W,
			sprite.H,
		),
		Layer: core.LayerOverlay,
	}
}

// State returns the top-level state.
func (g *Game) State() GameState {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.level.Score
}

// Level returns the current level.
func (g *Game) Level() *Level {
	return g.level
}

// Seed returns the seed the gap offsets are drawn from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Assets returns the session's asset set.
func (g *Game) Assets() assets.Set {
	return g.assets
}

// Done reports whether the session ended.
func (g *Game) Done() bool {
	return g.state == StateExit
}
