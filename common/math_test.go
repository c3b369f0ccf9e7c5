package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestApproach(t *testing.T) {
	tests := []struct {
		name              string
		cur, target, step float64
		want              float64
	}{
		{"accelerate", 0, 9, 1.2, 1.2},
		{"no overshoot up", 8.5, 9, 1.2, 9},
		{"decelerate", 5, 0, 1.6, 3.4},
		{"no overshoot down", 0.5, 0, 1.6, 0},
		{"negative target", 0, -9, 0.8, -0.8},
		{"already there", 9, 9, 1.2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Approach(tt.cur, tt.target, tt.step)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Approach(%v, %v, %v) = %v, want %v", tt.cur, tt.target, tt.step, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{"below", -5, 0, 10, 0},
		{"inside", 5, 0, 10, 5},
		{"above", 15, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestPointSegmentDistance(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b cp.Vector
		want    float64
	}{
		{"perpendicular", cp.Vector{X: 5, Y: 3}, cp.Vector{}, cp.Vector{X: 10}, 3},
		{"past end", cp.Vector{X: 14, Y: 0}, cp.Vector{}, cp.Vector{X: 10}, 4},
		{"before start", cp.Vector{X: -3, Y: 4}, cp.Vector{}, cp.Vector{X: 10}, 5},
		{"degenerate segment", cp.Vector{X: 3, Y: 4}, cp.Vector{}, cp.Vector{}, 5},
		{"on segment", cp.Vector{X: 4, Y: 0}, cp.Vector{}, cp.Vector{X: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointSegmentDistance(tt.p, tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PointSegmentDistance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectOverlapDepth(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 8, Y: 2, Width: 10, Height: 10}

	dx, dy := a.OverlapDepth(b)
	if math.Abs(dx-2) > 1e-9 {
		t.Errorf("dx = %v, want 2", dx)
	}
	if math.Abs(dy-8) > 1e-9 {
		t.Errorf("dy = %v, want 8", dy)
	}

	far := Rect{X: 100, Y: 100, Width: 10, Height: 10}
	dx, dy = a.OverlapDepth(far)
	if dx > 0 && dy > 0 {
		t.Errorf("disjoint rects report overlap: dx=%v dy=%v", dx, dy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"touching edge", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"disjoint", Rect{X: 50, Y: 50, Width: 5, Height: 5}, false},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(&tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}
