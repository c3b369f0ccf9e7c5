package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/revenant/common"
)

const (
	flyerChargeFrames = 30
	flyerDiveFrames   = 40
	flyerDiveSpeed    = 9.0
	flyerAccel        = 0.4
	flyerFriction     = 0.92
	flyerOrbitStep    = 0.03
	flyerOrbitRadius  = 90.0
	flyerHoverHeight  = 70.0
	flyerDazeFrames   = 60
)

// flyerBrain hovers toward an orbit point near the player and periodically
// locks a dive vector. No gravity, no platform resolution except the dive's
// crash check.
type flyerBrain struct {
	orbitPhase float64
	diveDir    cp.Vector
}

func (b *flyerBrain) defaultState() EnemyState { return EnemyChase }

func (b *flyerBrain) update(s *GameState, e *Enemy) {
	player := s.Player
	dist := common.Dist(e.Center(), player.Center())

	if e.State == EnemyAttack {
		b.tickAttack(s, e)
		return
	}

	// Hover target: an orbit offset near the player, or home when the player
	// is out of range or dead.
	target := cp.Vector{X: e.PatrolOrigin, Y: e.Rect.Y + e.Rect.Height/2}
	if !player.Dead && dist <= e.DetectionRange {
		e.State = EnemyChase
		b.orbitPhase += flyerOrbitStep
		target = player.Center().Add(cp.Vector{
			X: math.Cos(b.orbitPhase) * flyerOrbitRadius,
			Y: -flyerHoverHeight + math.Sin(b.orbitPhase)*20,
		})
		e.facePlayer(s)

		if dist <= e.AttackRange && e.CooldownTimer == 0 {
			e.State = EnemyAttack
			e.ChargeTimer = flyerChargeFrames
		}
	} else {
		e.State = EnemyPatrol
	}

	diff := target.Sub(e.Center())
	if diff.Length() > 1 {
		e.Vel = e.Vel.Add(diff.Normalize().Mult(flyerAccel))
	}
	e.Vel = e.Vel.Mult(flyerFriction)

	e.Rect.X += e.Vel.X
	e.Rect.Y += e.Vel.Y
}

func (b *flyerBrain) tickAttack(s *GameState, e *Enemy) {
	if e.ChargeTimer > 0 {
		// Bleed off drift while winding up.
		e.Vel = e.Vel.Mult(0.8)
		e.Rect.X += e.Vel.X
		e.Rect.Y += e.Vel.Y

		e.ChargeTimer--
		if e.ChargeTimer == 0 {
			// Lock the dive vector at charge end.
			diff := s.Player.Center().Sub(e.Center())
			if diff.Length() == 0 {
				diff = cp.Vector{Y: 1}
			}
			b.diveDir = diff.Normalize()
			e.DurationTimer = flyerDiveFrames
			e.FacingRight = b.diveDir.X >= 0
		}
		return
	}

	e.Vel = b.diveDir.Mult(flyerDiveSpeed)
	e.Rect.X += e.Vel.X
	e.Rect.Y += e.Vel.Y
	e.DurationTimer--

	if OverlapsSolid(e.Rect, s.Level.Platforms) {
		b.crash(s, e)
		return
	}

	if e.Rect.Intersects(&s.Player.Rect) {
		s.Player.Damage(s, e.ContactDamage, e.Center().X)
		b.endDive(e, e.CooldownBase)
		return
	}

	if e.DurationTimer <= 0 {
		b.endDive(e, e.CooldownBase)
	}
}

// crash handles a dive hitting geometry: back out of the wall, daze, and
// kick up impact feedback.
func (b *flyerBrain) crash(s *GameState, e *Enemy) {
	e.Rect.X -= e.Vel.X
	e.Rect.Y -= e.Vel.Y
	s.AddShake(4)
	s.SpawnBurst(e.Center(), 8, colornames.Slategray)
	b.endDive(e, e.CooldownBase+flyerDazeFrames)
}

func (b *flyerBrain) endDive(e *Enemy, cooldown int) {
	e.State = EnemyChase
	e.DurationTimer = 0
	e.CooldownTimer = cooldown
	e.Vel = cp.Vector{}
}
