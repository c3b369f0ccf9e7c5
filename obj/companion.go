package obj

import (
	"math"

	"github.com/jakecoffman/cp"
)

// CompanionMode selects the follow target and spring constants.
type CompanionMode int

const (
	CompanionPassive CompanionMode = iota
	CompanionAttack
)

const (
	passiveStiffness = 0.03
	passiveDamping   = 0.90
	attackStiffness  = 0.25
	attackDamping    = 0.75

	companionBobSpeed  = 0.05
	companionBobHeight = 6.0

	glitchChance = 0.004
	glitchDecay  = 0.9

	trailMaxLen      = 12
	trailSpeedThresh = 2.0
)

// Companion is the non-colliding follower. Purely cosmetic, but its trail and
// glitch state are stateful, so it ticks deterministically: the bob runs off
// the tick counter and glitch spikes come from the session rng.
type Companion struct {
	Pos  cp.Vector
	Vel  cp.Vector
	Mode CompanionMode

	// Glitch spikes to 1 occasionally and decays exponentially. The render
	// layer maps it onto jitter and palette noise.
	Glitch float64

	Trail []cp.Vector
}

func NewCompanion(start cp.Vector) *Companion {
	return &Companion{
		Pos: cp.Vector{X: start.X - 36, Y: start.Y - 44},
	}
}

// Update runs one spring-damper tick toward the mode's target offset.
func (c *Companion) Update(s *GameState) {
	p := s.Player

	c.Mode = CompanionPassive
	if p.Attacking && !p.Dead {
		c.Mode = CompanionAttack
	}

	side := -1.0
	if p.FacingRight {
		side = 1
	}

	var target cp.Vector
	var stiffness, damping float64
	switch c.Mode {
	case CompanionAttack:
		// Snap near the weapon side while a swing is active.
		target = p.Center().Add(cp.Vector{X: side * 42, Y: -10})
		stiffness = attackStiffness
		damping = attackDamping
	default:
		bob := math.Sin(float64(s.Tick)*companionBobSpeed) * companionBobHeight
		target = p.Center().Add(cp.Vector{X: -side * 36, Y: -44 + bob})
		stiffness = passiveStiffness
		damping = passiveDamping
	}

	accel := target.Sub(c.Pos).Mult(stiffness)
	c.Vel = c.Vel.Add(accel).Mult(damping)
	c.Pos = c.Pos.Add(c.Vel)

	if s.Rng.Float64() < glitchChance {
		c.Glitch = 1
	}
	c.Glitch *= glitchDecay
	if c.Glitch < 0.01 {
		c.Glitch = 0
	}

	if c.Vel.Length() > trailSpeedThresh {
		c.Trail = append(c.Trail, c.Pos)
		if len(c.Trail) > trailMaxLen {
			c.Trail = c.Trail[1:]
		}
	} else if len(c.Trail) > 0 {
		c.Trail = c.Trail[1:]
	}
}
