package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// TargetKind tags what a hit target is.
type TargetKind int

const (
	TargetGround TargetKind = iota
	TargetPipe
	TargetCoin
)

// String returns a human-readable name for the kind.
func (k TargetKind) String() string {
	switch k {
	case TargetGround:
		return "ground"
	case TargetPipe:
		return "pipe"
	case TargetCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Lethal reports whether touching the target ends the run.
func (k TargetKind) Lethal() bool {
	return k != TargetCoin
}

// HitTarget is an entry of the hit set.
type HitTarget struct {
	Kind     TargetKind
	Obstacle int // owning obstacle for pipes and coins, -1 for ground
	Index    int // segment or pipe index within the owner
	Collider core.Collider
}

// Resolve returns the first target the player collides with. Lethal targets
// are tested before coins, each group in set order, so a frame that touches a
// pipe and a coin at once always ends the run.
func Resolve(player core.Collider, targets []HitTarget) (HitTarget, bool) {
	for _, lethal := range []bool{true, false} {
		for _, t := range targets {
			if t.Kind.Lethal() != lethal {
				continue
			}
			if player.Collides(t.Collider) {
				return t, true
			}
		}
	}
	return HitTarget{}, false
}
