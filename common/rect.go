package common

import "github.com/jakecoffman/cp"

type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point is inside the rect (inclusive left/top,
// exclusive right/bottom).
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// OverlapDepth returns the per-axis penetration depth between two
// intersecting rects, computed from center distance vs combined half
// extents. Both components are <= 0 when the rects do not overlap.
func (r Rect) OverlapDepth(other Rect) (float64, float64) {
	dx := (r.Width+other.Width)/2 - absf(r.Center().X-other.Center().X)
	dy := (r.Height+other.Height)/2 - absf(r.Center().Y-other.Center().Y)
	return dx, dy
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
