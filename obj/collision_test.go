package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/revenant/common"
)

func floor() []Platform {
	return []Platform{
		{Rect: common.Rect{X: -1000, Y: 100, Width: 2000, Height: 40}, Kind: PlatformSolid},
	}
}

func TestMoveAndCollideLandsOnFloor(t *testing.T) {
	r := common.Rect{X: 0, Y: 0, Width: 32, Height: 48}
	vel := cp.Vector{Y: 80}

	res := MoveAndCollide(&r, &vel, floor())

	if !res.Grounded {
		t.Error("expected Grounded on downward contact")
	}
	if vel.Y != 0 {
		t.Errorf("vel.Y = %v, want 0 after landing", vel.Y)
	}
	if r.Bottom() != 100 {
		t.Errorf("Bottom = %v, want snapped to 100", r.Bottom())
	}
}

func TestMoveAndCollideFastMoverDoesNotTunnel(t *testing.T) {
	// A 10px-wide wall with a mover travelling 400px in one tick. Without
	// sub-stepping the X delta would skip the wall entirely.
	platforms := []Platform{
		{Rect: common.Rect{X: 200, Y: -1000, Width: 10, Height: 2000}, Kind: PlatformSolid},
	}
	r := common.Rect{X: 0, Y: 0, Width: 32, Height: 48}
	vel := cp.Vector{X: 400}

	res := MoveAndCollide(&r, &vel, platforms)

	if !res.HitWall {
		t.Error("expected HitWall")
	}
	if r.Right() != 200 {
		t.Errorf("Right = %v, want snapped to 200", r.Right())
	}
	if vel.X != 0 {
		t.Errorf("vel.X = %v, want 0", vel.X)
	}
}

func TestMoveAndCollideCeiling(t *testing.T) {
	platforms := []Platform{
		{Rect: common.Rect{X: -100, Y: -60, Width: 200, Height: 20}, Kind: PlatformSolid},
	}
	r := common.Rect{X: 0, Y: 0, Width: 32, Height: 48}
	vel := cp.Vector{Y: -100}

	res := MoveAndCollide(&r, &vel, platforms)

	if !res.HitCeiling {
		t.Error("expected HitCeiling")
	}
	if r.Y != -40 {
		t.Errorf("Y = %v, want snapped to -40", r.Y)
	}
	if res.Grounded {
		t.Error("upward contact must not set Grounded")
	}
}

func TestOnewayPlatform(t *testing.T) {
	platforms := []Platform{
		{Rect: common.Rect{X: -100, Y: 100, Width: 200, Height: 10}, Kind: PlatformOneway},
	}

	t.Run("catches downward mover from above", func(t *testing.T) {
		r := common.Rect{X: 0, Y: 40, Width: 32, Height: 48}
		vel := cp.Vector{Y: 30}
		res := MoveAndCollide(&r, &vel, platforms)
		if !res.Grounded {
			t.Error("expected Grounded")
		}
		if r.Bottom() != 100 {
			t.Errorf("Bottom = %v, want 100", r.Bottom())
		}
	})

	t.Run("ignores upward mover", func(t *testing.T) {
		r := common.Rect{X: 0, Y: 120, Width: 32, Height: 48}
		vel := cp.Vector{Y: -60}
		res := MoveAndCollide(&r, &vel, platforms)
		if res.HitCeiling || res.Grounded {
			t.Errorf("oneway blocked an upward mover: %+v", res)
		}
		if r.Y != 60 {
			t.Errorf("mover stopped at %v, want full travel to 60", r.Y)
		}
	})

	t.Run("ignores mover already inside", func(t *testing.T) {
		r := common.Rect{X: 0, Y: 80, Width: 32, Height: 48}
		vel := cp.Vector{Y: 5}
		res := MoveAndCollide(&r, &vel, platforms)
		if res.Grounded {
			t.Error("oneway caught a mover whose bottom started below the ledge top")
		}
	})

	t.Run("ignores mover whose bottom starts just below the top", func(t *testing.T) {
		// Bottom at 103 against a top of 100: already through the ledge, so
		// a downward step must not snap it back up.
		r := common.Rect{X: 0, Y: 55, Width: 32, Height: 48}
		vel := cp.Vector{Y: 5}
		res := MoveAndCollide(&r, &vel, platforms)
		if res.Grounded {
			t.Error("oneway caught a mover whose bottom started at 103, below the top")
		}
		if r.Bottom() != 108 {
			t.Errorf("Bottom = %v, want full travel to 108", r.Bottom())
		}
	})
}

func TestWallDir(t *testing.T) {
	tests := []struct {
		name      string
		platforms []Platform
		want      int
	}{
		{
			"wall on right",
			[]Platform{{Rect: common.Rect{X: 32, Y: -100, Width: 20, Height: 300}, Kind: PlatformSolid}},
			1,
		},
		{
			"wall on left",
			[]Platform{{Rect: common.Rect{X: -21, Y: -100, Width: 20, Height: 300}, Kind: PlatformSolid}},
			-1,
		},
		{
			"no wall",
			[]Platform{{Rect: common.Rect{X: 200, Y: -100, Width: 20, Height: 300}, Kind: PlatformSolid}},
			0,
		},
		{
			"oneway never counts as wall",
			[]Platform{{Rect: common.Rect{X: 32, Y: -100, Width: 20, Height: 300}, Kind: PlatformOneway}},
			0,
		},
	}

	r := common.Rect{X: 0, Y: 0, Width: 32, Height: 48}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WallDir(r, tt.platforms); got != tt.want {
				t.Errorf("WallDir = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPlayerNeverEndsTickInsideSolid(t *testing.T) {
	s := newTestState(t, 7)
	settle(t, s)

	inputs := []Sample{
		{Right: true},
		{Right: true, Jump: true},
		{Right: true, Dash: true},
		{Left: true},
		{Left: true, Down: true},
		{Right: true, Attack: true},
	}

	for i := 0; i < 600; i++ {
		tick(s, inputs[i%len(inputs)])
		if OverlapsSolid(insetRect(s.Player.Rect, 0.5), s.Level.Platforms) {
			t.Fatalf("tick %d: player hitbox overlaps solid geometry at (%v, %v)", i, s.Player.Rect.X, s.Player.Rect.Y)
		}
	}
}

func insetRect(r common.Rect, by float64) common.Rect {
	return common.Rect{
		X:      r.X + by,
		Y:      r.Y + by,
		Width:  math.Max(r.Width-2*by, 1),
		Height: math.Max(r.Height-2*by, 1),
	}
}
