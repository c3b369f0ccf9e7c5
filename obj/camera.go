package obj

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/revenant/common"
)

const (
	cameraViewW = 1280.0
	cameraViewH = 720.0

	combatRadius     = 320.0
	combatBasePad    = 180.0
	combatPadPerHit  = 8.0
	combatMinPad     = 60.0
	highComboHits    = 8
	highComboWiden   = 0.1
	cameraZoomMin    = 0.8
	cameraZoomMax    = 1.4
	cameraPosSmooth  = 0.08
	cameraZoomSmooth = 0.04

	lookAheadVelScale = 12.0
	lookAheadMax      = 140.0
	lookAheadFacing   = 40.0
	fallLookThresh    = 4.0
	fallLookScale     = 10.0
	fallLookMax       = 120.0
)

// Camera frames the action in one of two modes: combat fits a bounding box
// around the player and nearby enemies, exploration leads the player's
// movement. Position and zoom each exponentially chase their target at
// independent rates.
type Camera struct {
	Pos  cp.Vector
	Zoom float64

	ViewW, ViewH float64

	// Message is the active point-of-interest text, empty outside its radius.
	Message string

	nearby []*Enemy
}

func NewCamera(start cp.Vector) *Camera {
	return &Camera{
		Pos:   start,
		Zoom:  1,
		ViewW: cameraViewW,
		ViewH: cameraViewH,
	}
}

// Update recomputes the frame target and smooths toward it.
func (c *Camera) Update(s *GameState) {
	targetPos, targetZoom := c.explorationTarget(s)

	c.nearby = c.nearby[:0]
	for _, e := range s.Enemies {
		if e.Health.Dead {
			continue
		}
		if common.Dist(e.Center(), s.Player.Center()) <= combatRadius {
			c.nearby = append(c.nearby, e)
		}
	}
	if len(c.nearby) > 0 && !s.Player.Dead {
		targetPos, targetZoom = c.combatTarget(s)
	}

	c.Pos.X = common.Lerp(c.Pos.X, targetPos.X, cameraPosSmooth)
	c.Pos.Y = common.Lerp(c.Pos.Y, targetPos.Y, cameraPosSmooth)
	c.Zoom = common.Lerp(c.Zoom, targetZoom, cameraZoomSmooth)
}

// combatTarget centers on the bounding box of the player and nearby enemies
// and fits the zoom to it. Padding tightens as the hit counter climbs, and
// the zoom clamp widens a little at high combo.
func (c *Camera) combatTarget(s *GameState) (cp.Vector, float64) {
	p := &s.Player.Rect
	minX, minY := p.X, p.Y
	maxX, maxY := p.Right(), p.Bottom()
	for _, e := range c.nearby {
		minX = math.Min(minX, e.Rect.X)
		minY = math.Min(minY, e.Rect.Y)
		maxX = math.Max(maxX, e.Rect.Right())
		maxY = math.Max(maxY, e.Rect.Bottom())
	}

	pad := combatBasePad - float64(s.Player.HitCount)*combatPadPerHit
	if pad < combatMinPad {
		pad = combatMinPad
	}

	w := maxX - minX + 2*pad
	h := maxY - minY + 2*pad
	zoom := math.Min(c.ViewW/w, c.ViewH/h)

	lo, hi := cameraZoomMin, cameraZoomMax
	if s.Player.HitCount >= highComboHits {
		lo -= highComboWiden
		hi += highComboWiden
	}
	zoom = common.Clamp(zoom, lo, hi)

	center := cp.Vector{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
	return center, zoom
}

// explorationTarget applies velocity and facing look-ahead, a downward
// offset while falling fast, and any point-of-interest zoom override.
func (c *Camera) explorationTarget(s *GameState) (cp.Vector, float64) {
	p := s.Player

	lead := common.Clamp(p.Vel.X*lookAheadVelScale, -lookAheadMax, lookAheadMax)
	if p.FacingRight {
		lead += lookAheadFacing
	} else {
		lead -= lookAheadFacing
	}

	var down float64
	if p.Vel.Y > fallLookThresh {
		down = math.Min((p.Vel.Y-fallLookThresh)*fallLookScale, fallLookMax)
	}

	target := p.Center().Add(cp.Vector{X: lead, Y: down})
	zoom := 1.0

	c.Message = ""
	for i := range s.Level.POIs {
		poi := &s.Level.POIs[i]
		if common.Dist(p.Center(), poi.Pos) <= poi.Radius {
			zoom = poi.Zoom
			c.Message = poi.Message
			break
		}
	}

	return target, common.Clamp(zoom, cameraZoomMin, cameraZoomMax)
}
