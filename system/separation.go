package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/revenant/common"
	"github.com/milk9111/revenant/obj"
)

// separationWeight splits the push-apart between the two bodies. 0.5 is an
// even split.
const separationWeight = 0.5

// Separate resolves AABB overlap between every live enemy pair and between
// the player and each live enemy. Overlaps resolve along the axis of least
// penetration; both bodies shift apart and the velocity component along the
// resolved axis zeroes on both sides to stop jitter.
func Separate(s *obj.GameState) {
	live := s.LiveEnemies(nil)

	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			a, b := live[i], live[j]
			separatePair(&a.Rect, &a.Vel, &b.Rect, &b.Vel)
		}
	}

	if s.Player.Dead {
		return
	}
	p := s.Player
	for _, e := range live {
		// Flyers mid-dive pass through so the dive contact check decides.
		if e.Kind == "flyer" && e.State == obj.EnemyAttack {
			continue
		}
		separatePair(&p.Rect, &p.Vel, &e.Rect, &e.Vel)
	}
}

func separatePair(ra *common.Rect, va *cp.Vector, rb *common.Rect, vb *cp.Vector) {
	dx, dy := ra.OverlapDepth(*rb)
	if dx <= 0 || dy <= 0 {
		return
	}

	if dx < dy {
		half := dx * separationWeight
		if ra.Center().X < rb.Center().X {
			ra.X -= half
			rb.X += dx - half
		} else {
			ra.X += half
			rb.X -= dx - half
		}
		va.X = 0
		vb.X = 0
	} else {
		half := dy * separationWeight
		if ra.Center().Y < rb.Center().Y {
			ra.Y -= half
			rb.Y += dy - half
		} else {
			ra.Y += half
			rb.Y -= dy - half
		}
		va.Y = 0
		vb.Y = 0
	}
}
