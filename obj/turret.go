package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/revenant/common"
)

const (
	turretChargeFrames  = 45
	turretAimLerp       = 0.08
	turretBeamLength    = 600.0
	turretBeamTolerance = 14.0
	turretAlignY        = 80.0
)

// turretBrain walks into position, then charges a beam whose aim point lerps
// toward the player and fires an instant hit-scan.
type turretBrain struct {
	aim    cp.Vector
	aiming bool
}

func (b *turretBrain) defaultState() EnemyState { return EnemyChase }

func (b *turretBrain) update(s *GameState, e *Enemy) {
	player := s.Player
	dist := common.Dist(e.Center(), player.Center())

	if e.State == EnemyAttack {
		b.tickCharge(s, e)
		e.applyPhysics(s)
		return
	}
	b.aiming = false

	if e.State == EnemyIdle || e.State == EnemyPatrol {
		e.Vel.X = 0
		if !player.Dead && dist <= e.DetectionRange {
			e.State = EnemyChase
		}
	}

	if e.State == EnemyChase {
		if player.Dead || dist > e.DetectionRange*1.5 {
			e.State = EnemyIdle
			e.Vel.X = 0
		} else {
			e.facePlayer(s)
			aligned := math.Abs(player.Center().Y-e.Center().Y) < turretAlignY
			if dist <= e.AttackRange && aligned {
				e.Vel.X = 0
				if e.CooldownTimer == 0 {
					e.State = EnemyAttack
					e.ChargeTimer = turretChargeFrames
					b.aim = player.Center()
					b.aiming = true
				}
			} else {
				dir := common.Sign(player.Center().X - e.Center().X)
				e.Vel.X = dir * e.MoveSpeed
			}
		}
	}

	e.applyPhysics(s)
}

func (b *turretBrain) tickCharge(s *GameState, e *Enemy) {
	e.Vel.X = 0
	b.aiming = true
	b.aim = cp.Vector{
		X: common.Lerp(b.aim.X, s.Player.Center().X, turretAimLerp),
		Y: common.Lerp(b.aim.Y, s.Player.Center().Y, turretAimLerp),
	}

	if e.ChargeTimer > 0 {
		e.ChargeTimer--
	}
	if e.ChargeTimer > 0 {
		return
	}

	b.fire(s, e)
	b.aiming = false
	e.State = EnemyChase
	e.CooldownTimer = e.CooldownBase
}

// fire resolves the beam as a point-to-segment test from the muzzle through
// the locked aim point.
func (b *turretBrain) fire(s *GameState, e *Enemy) {
	muzzle := e.Center()
	dir := b.aim.Sub(muzzle)
	if dir.Length() == 0 {
		return
	}
	end := muzzle.Add(dir.Normalize().Mult(turretBeamLength))

	s.SpawnBurst(muzzle, 4, colornames.Deepskyblue)
	if common.PointSegmentDistance(s.Player.Center(), muzzle, end) <= turretBeamTolerance {
		s.Player.Damage(s, e.ContactDamage, muzzle.X)
	}
}
