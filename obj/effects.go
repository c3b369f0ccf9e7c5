package obj

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/revenant/common"
)

// Cosmetic entities: created by combat/death events, aged once per tick,
// self-removing. Nothing gameplay-affecting reads them.

type Particle struct {
	Pos   cp.Vector
	Vel   cp.Vector
	Life  int
	Color color.RGBA
}

type DamageNumber struct {
	Pos   cp.Vector
	Value float64
	Crit  bool
	Life  int
}

// SlashVfx is a one-shot directional swing effect (player combo arcs, walker
// telegraph slashes).
type SlashVfx struct {
	Rect        common.Rect
	FacingRight bool
	Life        int
}

// Ghost is a dash afterimage; alpha decays a fixed amount per tick.
type Ghost struct {
	Pos         cp.Vector
	FacingRight bool
	Frame       int
	Alpha       float64
}

const (
	damageNumberLife = 45
	particleGravity  = 0.25
	ghostAlphaDecay  = 0.08
	shakeDecay       = 0.88
)

// SpawnBurst scatters a ring of short-lived particles around a point.
func (s *GameState) SpawnBurst(pos cp.Vector, count int, c color.RGBA) {
	for i := 0; i < count; i++ {
		angle := s.Rng.Float64() * 2 * math.Pi
		speed := 1.5 + s.Rng.Float64()*3.5
		s.Particles = append(s.Particles, Particle{
			Pos:   pos,
			Vel:   cp.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle)*speed - 1.5},
			Life:  20 + s.Rng.Intn(16),
			Color: c,
		})
	}
}

func (s *GameState) SpawnDamageNumber(pos cp.Vector, value float64, crit bool) {
	s.DamageNumbers = append(s.DamageNumbers, DamageNumber{
		Pos:   pos,
		Value: value,
		Crit:  crit,
		Life:  damageNumberLife,
	})
}

func (s *GameState) SpawnSlash(r common.Rect, facingRight bool, life int) {
	s.Slashes = append(s.Slashes, SlashVfx{Rect: r, FacingRight: facingRight, Life: life})
}

// AddShake raises screen shake toward a soft ceiling.
func (s *GameState) AddShake(amount float64) {
	s.ScreenShake = common.Clamp(s.ScreenShake+amount, 0, 14)
}

// AgeEffects advances all cosmetic entity timers and drops expired ones.
func (s *GameState) AgeEffects() {
	particles := s.Particles[:0]
	for _, p := range s.Particles {
		p.Vel.Y += particleGravity
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	s.Particles = particles

	numbers := s.DamageNumbers[:0]
	for _, n := range s.DamageNumbers {
		n.Pos.Y -= 0.8
		n.Life--
		if n.Life > 0 {
			numbers = append(numbers, n)
		}
	}
	s.DamageNumbers = numbers

	slashes := s.Slashes[:0]
	for _, v := range s.Slashes {
		v.Life--
		if v.Life > 0 {
			slashes = append(slashes, v)
		}
	}
	s.Slashes = slashes

	s.ScreenShake *= shakeDecay
	if s.ScreenShake < 0.05 {
		s.ScreenShake = 0
	}
}
