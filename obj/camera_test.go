package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/revenant/prefabs"
)

func TestCameraExplorationLookAhead(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	cam := s.Camera
	p := s.Player

	p.FacingRight = true
	p.Vel.X = 9

	for i := 0; i < 300; i++ {
		cam.Update(s)
	}

	assert.Greater(t, cam.Pos.X, p.Center().X+lookAheadFacing,
		"camera leads ahead of a fast-moving player")
	assert.InDelta(t, 1.0, cam.Zoom, 0.01, "no POI, no combat: neutral zoom")
}

func TestCameraFallLookDown(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	cam := s.Camera
	p := s.Player

	p.Vel.Y = 14

	for i := 0; i < 300; i++ {
		cam.Update(s)
	}

	assert.Greater(t, cam.Pos.Y, p.Center().Y+50, "fast falls pull the frame downward")
}

func TestCameraPOIZoomOverride(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	cam := s.Camera

	s.Level.POIs = append(s.Level.POIs, PointOfInterest{
		Pos:     s.Player.Center(),
		Radius:  300,
		Zoom:    1.3,
		Message: "the old shrine",
	})

	for i := 0; i < 300; i++ {
		cam.Update(s)
	}

	assert.InDelta(t, 1.3, cam.Zoom, 0.02, "POI overrides the exploration target zoom")
	assert.Equal(t, "the old shrine", cam.Message)
}

func TestCameraCombatFraming(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	cam := s.Camera
	p := s.Player

	e := s.AddEnemy(NewEnemy(prefabs.WalkerArchetype(), p.Center().X+250, p.Center().Y))

	for i := 0; i < 400; i++ {
		cam.Update(s)
	}

	mid := p.Center().Add(e.Center()).Mult(0.5)
	assert.InDelta(t, mid.X, cam.Pos.X, 20, "combat mode centers between the combatants")
	assert.GreaterOrEqual(t, cam.Zoom, cameraZoomMin)
	assert.LessOrEqual(t, cam.Zoom, cameraZoomMax)
}

func TestCameraZoomClampWidensAtHighCombo(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	cam := s.Camera
	p := s.Player

	s.AddEnemy(NewEnemy(prefabs.WalkerArchetype(), p.Center().X+60, p.Center().Y))

	p.HitCount = 0
	_, zoomLow := cam.combatTarget(s)

	p.HitCount = highComboHits + 2
	_, zoomHigh := cam.combatTarget(s)

	// Tight fights zoom in; a high hit counter shrinks the padding and lets
	// the clamp stretch past the normal maximum.
	require.Equal(t, cameraZoomMax, zoomLow)
	assert.Greater(t, zoomHigh, zoomLow)
	assert.LessOrEqual(t, zoomHigh, cameraZoomMax+highComboWiden)
}

func TestCameraSmoothingConverges(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	cam := s.Camera

	cam.Pos = cp.Vector{X: -5000, Y: -5000}
	start := cam.Pos

	cam.Update(s)
	moved := math.Hypot(cam.Pos.X-start.X, cam.Pos.Y-start.Y)
	assert.Positive(t, moved, "camera chases its target")

	for i := 0; i < 600; i++ {
		cam.Update(s)
	}
	target, _ := cam.explorationTarget(s)
	assert.InDelta(t, target.X, cam.Pos.X, 2)
	assert.InDelta(t, target.Y, cam.Pos.Y, 2)
}
