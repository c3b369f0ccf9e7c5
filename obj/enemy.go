package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/revenant/common"
	"github.com/milk9111/revenant/component"
	"github.com/milk9111/revenant/prefabs"
)

// EnemyState is the shared AI state tag. Each brain only uses the subset
// that makes sense for its kind.
type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyPatrol
	EnemyChase
	EnemyAttack
	EnemyHit
)

func (s EnemyState) String() string {
	switch s {
	case EnemyPatrol:
		return "patrol"
	case EnemyChase:
		return "chase"
	case EnemyAttack:
		return "attack"
	case EnemyHit:
		return "hit"
	default:
		return "idle"
	}
}

const (
	hitFlashFrames    = 12
	knockbackFriction = 0.85
)

// brain is the per-kind behavior. The shared Enemy record carries physics,
// health and timers; kind-specific payload (turret aim, flyer dive vector)
// lives inside the brain so other kinds can't touch it.
type brain interface {
	update(s *GameState, e *Enemy)
	// defaultState is where the enemy lands after hit-stun wears off.
	defaultState() EnemyState
}

// Enemy is one AI-driven hostile. Created at level load or by a spawner,
// marked dead when health empties or its owning spawner evicts it.
type Enemy struct {
	ID     int
	Kind   string
	Rect   common.Rect
	Vel    cp.Vector
	Health *component.Health

	State       EnemyState
	FacingRight bool
	Grounded    bool

	PatrolOrigin   float64
	PatrolRange    float64
	DetectionRange float64
	AttackRange    float64
	MoveSpeed      float64
	ContactDamage  float64
	CooldownBase   int

	CooldownTimer int
	ChargeTimer   int
	DurationTimer int
	FlashTimer    int

	// SpawnerID is 0 for level-placed enemies.
	SpawnerID int

	AnimFrame int
	animClock int

	brain brain
}

// NewEnemy builds an enemy of the archetype's kind centered on (x, y).
func NewEnemy(arch prefabs.Archetype, x, y float64) *Enemy {
	e := &Enemy{
		Kind: arch.Kind,
		Rect: common.Rect{
			X:      x - arch.Width/2,
			Y:      y - arch.Height/2,
			Width:  arch.Width,
			Height: arch.Height,
		},
		Health:         component.NewHealth(arch.Health),
		PatrolOrigin:   x,
		PatrolRange:    arch.PatrolRange,
		DetectionRange: arch.DetectionRange,
		AttackRange:    arch.AttackRange,
		MoveSpeed:      arch.MoveSpeed,
		ContactDamage:  arch.ContactDamage,
		CooldownBase:   arch.AttackCooldown,
	}

	switch arch.Kind {
	case "turret":
		e.brain = &turretBrain{}
		e.State = EnemyIdle
	case "flyer":
		e.brain = &flyerBrain{}
		e.State = EnemyPatrol
	default:
		e.brain = &walkerBrain{}
		e.State = EnemyPatrol
	}
	return e
}

func (e *Enemy) Center() cp.Vector {
	return e.Rect.Center()
}

// Update runs one AI tick. Hit-stun suspends the brain: knockback plays out
// under friction until the flash timer lapses.
func (e *Enemy) Update(s *GameState) {
	if e.Health.Dead {
		return
	}

	if e.CooldownTimer > 0 {
		e.CooldownTimer--
	}

	if e.FlashTimer > 0 {
		e.FlashTimer--
		e.Vel.X *= knockbackFriction
		if e.Kind == "flyer" {
			e.Vel.Y *= knockbackFriction
		}
		if e.FlashTimer == 0 {
			e.State = e.brain.defaultState()
		}
		e.applyPhysics(s)
		return
	}

	e.brain.update(s, e)
}

// applyPhysics applies gravity and platform collision for grounded kinds.
// Flyers move themselves.
func (e *Enemy) applyPhysics(s *GameState) {
	if e.Kind == "flyer" {
		e.Rect.X += e.Vel.X
		e.Rect.Y += e.Vel.Y
		return
	}
	if e.Vel.Y < s.Profile.MaxFallSpeed {
		e.Vel.Y += s.Profile.Gravity
	}
	res := MoveAndCollide(&e.Rect, &e.Vel, s.Level.Platforms)
	e.Grounded = res.Grounded
}

// Hurt applies player attack damage plus knockback and starts hit-stun.
// Returns true when the hit killed the enemy.
func (e *Enemy) Hurt(s *GameState, damage float64, kb cp.Vector) bool {
	if e.Health.Dead {
		return false
	}

	e.Health.ApplyDamage(damage)
	e.Vel = kb
	e.FlashTimer = hitFlashFrames
	e.State = EnemyHit
	e.ChargeTimer = 0
	e.DurationTimer = 0

	return e.Health.Dead
}

// Kill force-kills the enemy without a damage source (spawner eviction).
func (e *Enemy) Kill(s *GameState) {
	if e.Health.Dead {
		return
	}
	e.Health.Current = 0
	e.Health.Dead = true
}

// TurretAim exposes the turret's charging aim point for the render layer.
func (e *Enemy) TurretAim() (cp.Vector, bool) {
	if t, ok := e.brain.(*turretBrain); ok && t.aiming {
		return t.aim, true
	}
	return cp.Vector{}, false
}

// facePlayer turns the enemy toward the player's X position.
func (e *Enemy) facePlayer(s *GameState) {
	e.FacingRight = s.Player.Center().X >= e.Center().X
}

// AdvanceAnimation steps the display frame counter.
func (e *Enemy) AdvanceAnimation() {
	e.animClock++
	if e.animClock%8 == 0 {
		e.AnimFrame++
	}
}
