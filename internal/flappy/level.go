package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// obstacleCount is the size of the recycled obstacle pool.
const obstacleCount = 2

// Level holds every entity of one session. A restart replaces the whole
// level; nothing carries over.
type Level struct {
	Player       *Player
	Ground       *Ground
	Obstacles    []*Obstacle
	Score        int
	ScoreDisplay *ScoreDisplay
	ScoreVisible bool
	Audio        DeathSequencer
}

func newLevel(cfg config.Config, set assets.Set, rng *rand.Rand) *Level {
	l := &Level{
		Player:       NewPlayer(cfg, set.Player),
		Ground:       NewGround(cfg, set.Ground),
		ScoreDisplay: NewScoreDisplay(cfg, set.Digits),
	}
	l.ScoreDisplay.Set(0)

	spacing := obstacleSpacing(cfg, set.Pipe)
	for i := 0; i < obstacleCount; i++ {
		l.Obstacles = append(l.Obstacles, newObstacle(spacing*i, cfg, set, rng))
	}
	return l
}

// hitSet returns the live collision targets: ground, pipes, then uncollected coins.
func (l *Level) hitSet() []HitTarget {
	targets := make([]HitTarget, 0, 2+3*len(l.Obstacles))
	for i, c := range l.Ground.Colliders() {
		targets = append(targets, HitTarget{Kind: TargetGround, Obstacle: -1, Index: i, Collider: c})
	}
	for i, o := range l.Obstacles {
		for j, c := range o.PipeColliders() {
			targets = append(targets, HitTarget{Kind: TargetPipe, Obstacle: i, Index: j, Collider: c})
		}
	}
	for i, o := range l.Obstacles {
		if o.collected {
			continue
		}
		targets = append(targets, HitTarget{Kind: TargetCoin, Obstacle: i, Collider: o.coin.Collider()})
	}
	return targets
}

// draws returns the level's draw requests in layer order.
func (l *Level) draws() []core.DrawRequest {
	out := make([]core.DrawRequest, 0, 16)

	for _, o := range l.Obstacles {
		pipes := o.Pipes()
		out = append(out,
			core.DrawRequest{Visual: core.VisualPipe, Rect: pipes[0], FlipY: true, Layer: core.LayerPipes},
			core.DrawRequest{Visual: core.VisualPipe, Rect: pipes[1], Layer: core.LayerPipes},
		)
	}
	for _, r := range l.Ground.Segments() {
		out = append(out, core.DrawRequest{Visual: core.VisualGround, Rect: r, Layer: core.LayerGround})
	}
	for _, o := range l.Obstacles {
		if o.collected {
			continue
		}
		out = append(out, core.DrawRequest{
			Visual: core.VisualCoin,
			Frame:  o.coin.Frame(),
			Rect:   o.coin.Rect(),
			Layer:  core.LayerCoins,
		})
	}
	out = append(out, core.DrawRequest{
		Visual: core.VisualPlayer,
		Frame:  l.Player.Frame(),
		Rect:   l.Player.Rect(),
		FlipY:  l.Player.Flipped(),
		Layer:  core.LayerPlayer,
	})
	if l.ScoreVisible {
		out = append(out, l.ScoreDisplay.Draws()...)
	}
	return out
}
