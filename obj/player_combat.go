package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/revenant/common"
	"github.com/milk9111/revenant/component"
)

const critMultiplier = 1.5

// startAttack dispatches a fresh attack press. Two special inputs bypass the
// standard combo and its cooldown bookkeeping: jump held selects the
// air-launcher, an active dash becomes the dash-attack cancel. Neither can be
// combo-chained.
func (p *Player) startAttack(s *GameState, in Sample) {
	switch {
	case in.Jump:
		p.startLauncher(s)
	case p.Dashing:
		p.startDashAttack(s)
	default:
		p.startComboAttack(s)
	}
}

func (p *Player) startLauncher(s *GameState) {
	p.Attacking = true
	p.AttackTimer = s.Profile.AttackDurationFrames
	p.Vel.Y = -s.Profile.LaunchForce
	p.CanDoubleJump = true
	// The held jump fed this press; it must not also buffer a jump.
	p.JumpBufferTimer = 0
	p.resolveHits(s, component.AttackLauncher)
}

func (p *Player) startDashAttack(s *GameState) {
	// Cancel the dash but keep its full forward velocity.
	p.Dashing = false
	p.DashTimer = 0
	p.Vel.X = p.dashDirX * s.Profile.DashSpeed
	p.Vel.Y = 0

	p.Attacking = true
	p.AttackTimer = s.Profile.AttackDurationFrames + 4
	s.TriggerSlowMo(0.3, 0.35)
	p.resolveHits(s, component.AttackDash)
}

func (p *Player) startComboAttack(s *GameState) {
	if p.AttackCooldown > 0 {
		return
	}

	if p.ComboWindowTimer > 0 {
		p.ComboStep = (p.ComboStep + 1) % 3
	} else {
		p.ComboStep = 0
	}

	p.Attacking = true
	p.AttackTimer = s.Profile.AttackDurationFrames
	p.AttackCooldown = s.Profile.AttackCooldownFrames
	p.ComboWindowTimer = s.Profile.AttackCooldownFrames + s.Profile.ComboWindowFrames

	// Gap-closer lunge toward whatever the swing is aimed at.
	dir := p.facingSign()
	p.Vel.X = dir * math.Max(math.Abs(p.Vel.X), s.Profile.LungeSpeed)

	p.resolveHits(s, component.AttackCombo)
}

func (p *Player) facingSign() float64 {
	if p.FacingRight {
		return 1
	}
	return -1
}

// attackHitbox builds the facing-oriented hitbox for an attack kind.
func (p *Player) attackHitbox(kind component.AttackKind) common.Rect {
	var w, h, yOff float64
	switch kind {
	case component.AttackLauncher:
		w, h = 48, 56
		yOff = -16
	case component.AttackDash:
		// Low and wide, matching the slide posture.
		w, h = 80, 28
		yOff = p.Rect.Height - 28
	default:
		w, h = 56, 40
		yOff = (p.Rect.Height - h) / 2
	}

	x := p.Rect.Right()
	if !p.FacingRight {
		x = p.Rect.X - w
	}
	return common.Rect{X: x, Y: p.Rect.Y + yOff, Width: w, Height: h}
}

func (p *Player) attackKnockback(kind component.AttackKind) cp.Vector {
	dir := p.facingSign()
	switch kind {
	case component.AttackLauncher:
		return cp.Vector{X: dir * 2, Y: -11}
	case component.AttackDash:
		return cp.Vector{X: dir * 9, Y: -1.5}
	default:
		if p.ComboStep == 2 {
			return cp.Vector{X: dir * 8, Y: -4}
		}
		return cp.Vector{X: dir * 6, Y: -2}
	}
}

func (p *Player) attackHitStop(kind component.AttackKind) int {
	switch kind {
	case component.AttackLauncher:
		return 6
	case component.AttackDash:
		return 10
	default:
		if p.ComboStep == 2 {
			return 7
		}
		return 3
	}
}

// resolveHits runs once per qualifying attack: every live enemy overlapping
// the hitbox takes combo-scaled damage, knockback and a hit flash. A landed
// hit feeds the running hit counter, screen shake and hit-stop.
func (p *Player) resolveHits(s *GameState, kind component.AttackKind) {
	hb := p.attackHitbox(kind)
	s.SpawnSlash(hb, p.FacingRight, 10)

	count := p.HitCount
	if count > s.Profile.HitCountCap {
		count = s.Profile.HitCountCap
	}

	hitAny := false
	for _, e := range s.Enemies {
		if e.Health.Dead || !hb.Intersects(&e.Rect) {
			continue
		}

		damage := s.Profile.BaseDamage * (1 + float64(count)*s.Profile.ComboDamageScale)
		crit := kind != component.AttackCombo
		if kind == component.AttackCombo && p.ComboStep == 2 && s.Rng.Float64() < s.Profile.CritChance {
			crit = true
		}
		if crit {
			damage *= critMultiplier
		}

		kb := p.attackKnockback(kind)
		lethal := e.Hurt(s, damage, kb)
		s.Hits.Emit(component.HitEvent{
			TargetID:  e.ID,
			Kind:      kind,
			ComboStep: p.ComboStep,
			Damage:    damage,
			Crit:      crit,
			Lethal:    lethal,
			Pos:       e.Rect.Center(),
			Knockback: kb,
		})
		hitAny = true
	}

	if !hitAny {
		return
	}

	p.HitCount++
	p.ComboKeepAlive = s.Profile.ComboKeepAliveFrames
	s.AddShake(2 + float64(p.attackHitStop(kind))*0.4)
	if kind == component.AttackCombo {
		p.Vel.X += p.facingSign() * s.Profile.LungeSpeed * 0.5
	}
	s.TriggerHitStop(p.attackHitStop(kind))
}

// Damage applies incoming damage to the player. Ignored entirely while
// invincible or dead. Resets the hit counter, grants hurt i-frames and
// knocks the player away from the source's X position.
func (p *Player) Damage(s *GameState, amount, sourceX float64) bool {
	if p.Dead {
		return false
	}
	if !p.Health.ApplyDamage(amount) {
		return false
	}

	p.HitCount = 0
	p.ComboKeepAlive = 0
	p.Health.StartIFrames(s.Profile.HurtIFrames)

	dir := common.Sign(p.Center().X - sourceX)
	if dir == 0 {
		dir = 1
	}
	p.Vel.X = dir * 6
	p.Vel.Y = -5

	s.SpawnDamageNumber(p.Center(), amount, false)
	s.SpawnBurst(p.Center(), 8, colornames.Crimson)
	s.AddShake(6)
	return true
}
