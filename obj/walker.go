package obj

import (
	"math"

	"github.com/milk9111/revenant/common"
)

const (
	walkerChargeFrames  = 20
	walkerSwingFrames   = 16
	walkerChaseSpeedMul = 1.6
	walkerCooldownJit   = 30

	// Damage window: the mid-slice of the swing.
	walkerSwingActiveFrom = 11
	walkerSwingActiveTo   = 5
)

// walkerBrain patrols a ground strip, chases on sight and swings a
// telegraphed melee attack in range.
type walkerBrain struct{}

func (b *walkerBrain) defaultState() EnemyState { return EnemyChase }

func (b *walkerBrain) update(s *GameState, e *Enemy) {
	player := s.Player
	dist := common.Dist(e.Center(), player.Center())

	// Attack runs before the transition chain so a freshly entered attack
	// keeps its full charge for the next tick.
	if e.State == EnemyAttack {
		b.tickAttack(s, e)
		e.applyPhysics(s)
		return
	}

	if e.State == EnemyIdle || e.State == EnemyPatrol {
		b.patrol(e)
		if !player.Dead && dist <= e.DetectionRange {
			e.State = EnemyChase
		}
	}

	if e.State == EnemyChase {
		if player.Dead || dist > e.DetectionRange*1.5 {
			e.State = EnemyPatrol
			e.Vel.X = 0
		} else {
			e.facePlayer(s)
			dir := common.Sign(player.Center().X - e.Center().X)
			e.Vel.X = dir * e.MoveSpeed * walkerChaseSpeedMul

			if dist <= e.AttackRange && e.CooldownTimer == 0 {
				e.State = EnemyAttack
				e.ChargeTimer = walkerChargeFrames
				e.Vel.X = 0
			}
		}
	}

	e.applyPhysics(s)
}

func (b *walkerBrain) patrol(e *Enemy) {
	e.State = EnemyPatrol
	if e.PatrolRange <= 0 {
		e.Vel.X = 0
		return
	}

	if e.Vel.X == 0 {
		e.Vel.X = e.MoveSpeed
	}
	cx := e.Center().X
	if cx >= e.PatrolOrigin+e.PatrolRange {
		e.Vel.X = -e.MoveSpeed
	} else if cx <= e.PatrolOrigin-e.PatrolRange {
		e.Vel.X = e.MoveSpeed
	}
	e.FacingRight = e.Vel.X > 0
}

func (b *walkerBrain) tickAttack(s *GameState, e *Enemy) {
	e.Vel.X = 0

	if e.ChargeTimer > 0 {
		e.ChargeTimer--
		if e.ChargeTimer == 0 {
			e.DurationTimer = walkerSwingFrames
			s.SpawnSlash(b.swingHitbox(e), e.FacingRight, walkerSwingFrames)
		}
		return
	}

	if e.DurationTimer > 0 {
		e.DurationTimer--
		if e.DurationTimer <= walkerSwingActiveFrom && e.DurationTimer >= walkerSwingActiveTo {
			hb := b.swingHitbox(e)
			if hb.Intersects(&s.Player.Rect) {
				s.Player.Damage(s, e.ContactDamage, e.Center().X)
			}
		}
		if e.DurationTimer == 0 {
			e.State = EnemyChase
			e.CooldownTimer = e.CooldownBase + s.Rng.Intn(walkerCooldownJit)
		}
	}
}

func (b *walkerBrain) swingHitbox(e *Enemy) common.Rect {
	w := math.Max(e.AttackRange, 40)
	h := e.Rect.Height * 0.9
	x := e.Rect.Right()
	if !e.FacingRight {
		x = e.Rect.X - w
	}
	return common.Rect{X: x, Y: e.Rect.Y + (e.Rect.Height-h)/2, Width: w, Height: h}
}
