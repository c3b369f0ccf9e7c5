package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/revenant/common"
)

const (
	// maxSubStep bounds per-sub-step displacement so fast movers can't
	// tunnel through thin geometry.
	maxSubStep = 10.0

	wallProbeWidth  = 2.0
	wallProbeInsetY = 4.0
)

// MoveResult reports which contacts a swept move produced.
type MoveResult struct {
	Grounded   bool
	HitWall    bool
	HitCeiling bool
}

// MoveAndCollide applies the velocity to the rect in fixed-length sub-steps,
// resolving each axis independently against the platform list. On overlap the
// rect snaps to the platform edge implied by the movement direction and the
// corresponding velocity component zeroes. Grounded is proven only by a
// downward-resolved Y contact this call.
func MoveAndCollide(r *common.Rect, vel *cp.Vector, platforms []Platform) MoveResult {
	var res MoveResult
	if r == nil || vel == nil {
		return res
	}

	longest := math.Max(math.Abs(vel.X), math.Abs(vel.Y))
	steps := int(math.Ceil(longest / maxSubStep))
	if steps < 1 {
		steps = 1
	}
	stepX := vel.X / float64(steps)
	stepY := vel.Y / float64(steps)

	for i := 0; i < steps; i++ {
		if stepX != 0 {
			r.X += stepX
			for pi := range platforms {
				p := &platforms[pi]
				if p.Kind != PlatformSolid {
					continue
				}
				if !r.Intersects(&p.Rect) {
					continue
				}
				if stepX > 0 {
					r.X = p.Rect.X - r.Width
				} else {
					r.X = p.Rect.Right()
				}
				vel.X = 0
				stepX = 0
				res.HitWall = true
				break
			}
		}

		if stepY != 0 {
			prevBottom := r.Bottom()
			r.Y += stepY
			for pi := range platforms {
				p := &platforms[pi]
				if !r.Intersects(&p.Rect) {
					continue
				}
				if p.Kind == PlatformOneway {
					// Oneway ledges only catch a downward mover whose
					// bottom started at or above the ledge top.
					if stepY <= 0 || prevBottom > p.Rect.Y+0.01 {
						continue
					}
				}
				if stepY > 0 {
					r.Y = p.Rect.Y - r.Height
					res.Grounded = true
				} else {
					r.Y = p.Rect.Bottom()
					res.HitCeiling = true
				}
				vel.Y = 0
				stepY = 0
				break
			}
		}
	}

	return res
}

// WallDir probes a thin rectangle flush against each side of the hitbox and
// reports which side touches a solid platform: -1 left, 1 right, 0 neither.
func WallDir(r common.Rect, platforms []Platform) int {
	left := common.Rect{
		X:      r.X - wallProbeWidth,
		Y:      r.Y + wallProbeInsetY,
		Width:  wallProbeWidth,
		Height: r.Height - 2*wallProbeInsetY,
	}
	right := common.Rect{
		X:      r.Right(),
		Y:      r.Y + wallProbeInsetY,
		Width:  wallProbeWidth,
		Height: r.Height - 2*wallProbeInsetY,
	}
	for pi := range platforms {
		p := &platforms[pi]
		if p.Kind != PlatformSolid {
			continue
		}
		if left.Intersects(&p.Rect) {
			return -1
		}
		if right.Intersects(&p.Rect) {
			return 1
		}
	}
	return 0
}

// OverlapsSolid reports whether the rect intersects any solid platform.
func OverlapsSolid(r common.Rect, platforms []Platform) bool {
	for pi := range platforms {
		p := &platforms[pi]
		if p.Kind == PlatformSolid && r.Intersects(&p.Rect) {
			return true
		}
	}
	return false
}
