package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestNewValidatesAssets(t *testing.T) {
	set := assets.Standard(assets.DefaultTheme)
	set.Player.Frames = 0
	_, err := New(config.Default(), set)
	assert.ErrorIs(t, err, assets.ErrInvalidAssets)

	set = assets.Standard(assets.DefaultTheme)
	set.Ground.W = 100
	_, err = New(config.Default(), set)
	assert.ErrorIs(t, err, assets.ErrInvalidAssets)

	cfg := config.Default()
	cfg.Screen.FPS = 0
	_, err = New(cfg, assets.Standard(assets.DefaultTheme))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestFreshLevel(t *testing.T) {
	g := newTestGame(t)
	cfg := config.Default()

	assert.Equal(t, StateIdle, g.State())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, PlayerIdle, g.Level().Player.State())

	obstacles := g.Level().Obstacles
	require.Len(t, obstacles, 2)
	spacing := cfg.Screen.Width/2 + 52/2
	assert.Equal(t, cfg.Screen.Width, obstacles[0].Anchor().X)
	assert.Equal(t, cfg.Screen.Width+spacing, obstacles[1].Anchor().X)
}

func TestResetFromAnyState(t *testing.T) {
	for _, name := range []string{"idle", "running", "paused", "gameover"} {
		t.Run(name, func(t *testing.T) {
			g := newTestGame(t)
			switch name {
			case "running":
				g.Step([]core.Event{core.EventPrimary}, 0)
				g.level.Score = 3
			case "paused":
				g.Step([]core.Event{core.EventPrimary, core.EventPause}, 0)
			case "gameover":
				g.Step([]core.Event{core.EventPrimary}, 0)
				g.resolveCollisionsWith(TargetPipe)
			}

			g.Reset()

			assert.Equal(t, StateIdle, g.State())
			assert.Equal(t, 0, g.Score())
			assert.Equal(t, PlayerIdle, g.Level().Player.State())
			assert.Len(t, g.Level().Obstacles, 2)
			assert.Equal(t, 288, g.Level().Obstacles[0].Anchor().X)
			assert.Equal(t, 288+170, g.Level().Obstacles[1].Anchor().X)
		})
	}
}

// resolveCollisionsWith forces a hit against the first target of the kind by
// placing the player on top of it.
func (g *Game) resolveCollisionsWith(kind TargetKind) {
	l := g.level
	o := l.Obstacles[0]
	p := l.Player.Rect()

	switch kind {
	case TargetCoin:
		centerObstacleOn(o, p.CenterX(), p.CenterY())
	case TargetPipe:
		o.anchor.SetCenterX(p.CenterX())
		o.anchor.Y = p.CenterY() - o.pipe.H + 30
		o.coin.Follow(o.anchor)
	}
	g.resolveCollisions()
}

func TestIdleTicksDecorationOnly(t *testing.T) {
	g := newTestGame(t)
	l := g.Level()

	player := l.Player.Rect()
	anchor := l.Obstacles[0].Anchor()
	ground := l.Ground.Segments()[0]

	for i := 0; i < 120; i++ {
		g.Step(nil, frameDT)
	}

	assert.Equal(t, player, l.Player.Rect(), "player waits for input")
	assert.Equal(t, anchor, l.Obstacles[0].Anchor(), "obstacles do not scroll")
	assert.Less(t, l.Ground.Segments()[0].X, ground.X, "ground scrolls")
	assert.Equal(t, anchor.CenterX(), l.Obstacles[0].Coin().Rect().CenterX())
}

func TestIdleDrawsGetReady(t *testing.T) {
	g := newTestGame(t)
	f := g.Step(nil, frameDT)

	require.NotEmpty(t, f.Draws)
	last := f.Draws[len(f.Draws)-1]
	assert.Equal(t, core.VisualGetReady, last.Visual)
	assert.Equal(t, core.NewRect(144-92, 256-133-42+60, 184, 267), last.Rect)
	assert.False(t, hasVisual(f.Draws, core.VisualDigit), "score hidden before start")
}

func TestDrawsAreLayered(t *testing.T) {
	g := startedGame(t)
	f := g.Step(nil, frameDT)

	for i := 1; i < len(f.Draws); i++ {
		assert.LessOrEqual(t, f.Draws[i-1].Layer, f.Draws[i].Layer, "draw %d out of order", i)
	}
	assert.True(t, hasVisual(f.Draws, core.VisualDigit))
	assert.False(t, hasVisual(f.Draws, core.VisualGetReady))

	flipped := 0
	for _, d := range f.Draws {
		if d.Visual == core.VisualPipe && d.FlipY {
			flipped++
		}
	}
	assert.Equal(t, 2, flipped, "one flipped top pipe per obstacle")
}

func TestStartScenario(t *testing.T) {
	g := newTestGame(t)
	require.Equal(t, StateIdle, g.State())
	require.Equal(t, 0, g.Score())

	f := g.Step([]core.Event{core.EventPrimary}, 0)
	assert.Equal(t, StateRunning, f.State)
	assert.Equal(t, PlayerFlying, f.PlayerState)
	assert.Equal(t, []core.Sound{core.SoundWing}, soundsOf(f))

	p := g.Level().Player
	prevY := p.Rect().Y
	prevV := p.Velocity()
	for i := 0; i < 5; i++ {
		g.Step(nil, frameDT)
		assert.Greater(t, p.Velocity(), prevV, "gravity accelerates every frame")
		assert.Less(t, p.Rect().Y, prevY, "still rising from the initial kick")
		prevY = p.Rect().Y
		prevV = p.Velocity()
	}

	centerObstacleOn(g.Level().Obstacles[0], p.Rect().CenterX(), p.Rect().CenterY())
	f = g.Step(nil, 0)

	assert.Equal(t, 1, f.Score)
	assert.Equal(t, StateRunning, f.State)
	assert.Equal(t, []core.Sound{core.SoundPoint}, soundsOf(f))
}

func TestCoinCollectedOnce(t *testing.T) {
	g := startedGame(t)
	g.resolveCollisionsWith(TargetCoin)
	require.Equal(t, 1, g.Score())
	assert.True(t, g.Level().Obstacles[0].Collected())

	// Still overlapping: the coin left the hit set.
	g.resolveCollisions()
	assert.Equal(t, 1, g.Score())

	f := g.Step(nil, 0)
	assert.Equal(t, 1, f.Score)
	coins := 0
	for _, d := range f.Draws {
		if d.Visual == core.VisualCoin {
			coins++
		}
	}
	assert.Equal(t, 1, coins, "collected coin is not drawn")
}

func TestPipeCollisionEndsRun(t *testing.T) {
	g := startedGame(t)
	g.resolveCollisionsWith(TargetPipe)

	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, 0, g.Score(), "a pipe never scores")
	assert.Equal(t, PlayerDying, g.Level().Player.State())
	assert.Equal(t, AudioPlayingHit, g.Level().Audio.Phase())

	f := g.Step(nil, 0)
	require.NotEmpty(t, f.Sounds)
	assert.Equal(t, core.SoundRequest{Sound: core.SoundHit, Priority: true}, f.Sounds[0])
}

func TestGroundCollisionEndsRun(t *testing.T) {
	g := startedGame(t)

	var f Frame
	for i := 0; i < 2000 && g.State() == StateRunning; i++ {
		// Keep the obstacles away so only the ground can be hit.
		for _, o := range g.Level().Obstacles {
			o.anchor.X = 200
		}
		f = g.Step(nil, frameDT)
	}

	assert.Equal(t, StateGameOver, f.State)
	assert.Equal(t, 0, f.Score)
	assert.Contains(t, f.Sounds, core.SoundRequest{Sound: core.SoundHit, Priority: true})
}

func TestGameOverToRestart(t *testing.T) {
	g := startedGame(t)
	g.resolveCollisionsWith(TargetPipe)
	require.Equal(t, StateGameOver, g.State())

	f := g.Step([]core.Event{core.EventSecondary}, 0)
	assert.Equal(t, StateGameOver, f.State, "restart waits until the bird is dead")
	assert.False(t, hasVisual(f.Draws, core.VisualGameOver))

	anchor := g.Level().Obstacles[1].Anchor()
	for i := 0; i < 2000 && g.Level().Player.State() != PlayerDead; i++ {
		f = g.Step(nil, frameDT)
	}
	require.Equal(t, PlayerDead, f.PlayerState)
	assert.Equal(t, 428, g.Level().Player.Rect().Bottom())
	assert.Equal(t, anchor, g.Level().Obstacles[1].Anchor(), "world frozen during game over")
	assert.True(t, hasVisual(f.Draws, core.VisualGameOver))

	f = g.Step([]core.Event{core.EventSecondary}, frameDT)
	assert.Equal(t, StateIdle, f.State)
	assert.Equal(t, PlayerIdle, f.PlayerState)
	assert.Equal(t, 0, f.Score)
	assert.Equal(t, []core.Sound{core.SoundSwoosh}, soundsOf(f))
}

func TestDieSoundPlaysOnce(t *testing.T) {
	g := newTestGame(t)

	f := g.Step([]core.Event{core.EventPriorityFinished}, 0)
	assert.Empty(t, f.Sounds, "no chain before a death")

	g.Step([]core.Event{core.EventPrimary}, 0)
	g.resolveCollisionsWith(TargetPipe)
	g.Step(nil, frameDT)

	// The notification may arrive on any later frame, possibly twice.
	g.Step(nil, frameDT)
	f = g.Step([]core.Event{core.EventPriorityFinished}, frameDT)
	assert.Equal(t, []core.Sound{core.SoundDie}, soundsOf(f))

	f = g.Step([]core.Event{core.EventPriorityFinished}, frameDT)
	assert.Empty(t, f.Sounds)
}

func TestPauseFreezesEverything(t *testing.T) {
	g := startedGame(t)
	g.Step(nil, frameDT)

	f := g.Step([]core.Event{core.EventPause}, frameDT)
	require.Equal(t, StatePaused, f.State)

	l := g.Level()
	player := l.Player.Rect()
	ground := l.Ground.Segments()
	anchor := l.Obstacles[0].Anchor()

	for i := 0; i < 60; i++ {
		f = g.Step([]core.Event{core.EventPrimary}, frameDT)
	}
	assert.Equal(t, player, l.Player.Rect())
	assert.Equal(t, ground, l.Ground.Segments())
	assert.Equal(t, anchor, l.Obstacles[0].Anchor())
	assert.Empty(t, f.Sounds, "flapping is ignored while paused")
	assert.NotEmpty(t, f.Draws, "last frame stays on screen")

	f = g.Step([]core.Event{core.EventPause}, frameDT)
	assert.Equal(t, StateRunning, f.State)
}

func TestPauseIgnoredOutsideRunning(t *testing.T) {
	g := newTestGame(t)
	g.HandleEvent(core.EventPause)
	assert.Equal(t, StateIdle, g.State())
}

func TestQuitStopsSession(t *testing.T) {
	for _, start := range []GameState{StateIdle, StateRunning, StatePaused} {
		t.Run(start.String(), func(t *testing.T) {
			g := newTestGame(t)
			if start != StateIdle {
				g.HandleEvent(core.EventPrimary)
			}
			if start == StatePaused {
				g.HandleEvent(core.EventPause)
			}
			require.Equal(t, start, g.State())

			f := g.Step([]core.Event{core.EventQuit, core.EventPrimary}, frameDT)
			assert.Equal(t, StateExit, f.State)
			assert.True(t, g.Done())
			assert.Empty(t, f.Draws)

			ground := g.Level().Ground.Segments()
			f = g.Step([]core.Event{core.EventSecondary, core.EventPause}, frameDT)
			assert.Equal(t, StateExit, f.State)
			assert.Equal(t, ground, g.Level().Ground.Segments(), "nothing updates after exit")
		})
	}
}

func TestRecycleDuringRun(t *testing.T) {
	g := startedGame(t)
	o := g.Level().Obstacles[0]
	o.collected = true
	o.anchor.X = -o.anchor.W // one more pixel and it is off screen

	g.level.Player.rect.Y = 100 // stay clear of the ground
	g.level.Player.velocity = 0
	g.Step(nil, 2*frameDT)

	assert.Equal(t, 288, o.Anchor().X)
	assert.False(t, o.Collected())
	assertAligned(t, o)
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []int {
		g := newTestGame(t)
		g.Step([]core.Event{core.EventPrimary}, 0)
		var offsets []int
		for i := 0; i < 3000 && g.State() == StateRunning; i++ {
			var events []core.Event
			if i%25 == 0 {
				events = []core.Event{core.EventPrimary}
			}
			g.Step(events, frameDT)
			for _, o := range g.Level().Obstacles {
				offsets = append(offsets, o.GapOffset())
			}
		}
		return append(offsets, g.Score(), int(g.State()))
	}

	assert.Equal(t, run(), run())
}
