package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Approach moves cur toward target by at most step without overshooting.
func Approach(cur, target, step float64) float64 {
	if cur < target {
		cur += step
		if cur > target {
			return target
		}
		return cur
	}
	cur -= step
	if cur < target {
		return target
	}
	return cur
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Dist(a, b cp.Vector) float64 {
	return a.Distance(b)
}

// PointSegmentDistance returns the distance from p to the closest point on
// the segment a-b.
func PointSegmentDistance(p, a, b cp.Vector) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return p.Distance(a.Add(ab.Mult(t)))
}

func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
