package obj

import (
	"testing"

	"github.com/milk9111/revenant/prefabs"
)

// newTestState builds a session on a single wide floor at y=200 with the
// player starting at (100, 100).
func newTestState(t *testing.T, seed int64) *GameState {
	t.Helper()

	spec := &prefabs.LevelSpec{
		ID:         "test",
		Start:      prefabs.VecSpec{X: 100, Y: 100},
		KillPlaneY: 2000,
		Platforms: []prefabs.PlatformSpec{
			{X: -2000, Y: 200, Width: 8000, Height: 40},
		},
	}

	s, err := NewGameState(spec, prefabs.DefaultProfile(), seed)
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return s
}

// settle runs idle ticks until the player lands.
func settle(t *testing.T, s *GameState) {
	t.Helper()
	for i := 0; i < 240; i++ {
		s.Player.Update(s, Sample{})
		if s.Player.Grounded && s.Player.Vel.Y == 0 && s.Player.Vel.X == 0 {
			return
		}
	}
	t.Fatal("player never settled on the floor")
}

// tick runs one full player tick with the given input.
func tick(s *GameState, in Sample) {
	s.Player.Update(s, in)
	s.Tick++
}
