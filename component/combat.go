package component

import "github.com/jakecoffman/cp"

// AttackKind distinguishes the player's attack variants for hitbox shape,
// damage multipliers and hit-stop scaling.
type AttackKind int

const (
	AttackCombo AttackKind = iota
	AttackLauncher
	AttackDash
)

func (k AttackKind) String() string {
	switch k {
	case AttackLauncher:
		return "launcher"
	case AttackDash:
		return "dash"
	default:
		return "combo"
	}
}

// HitEvent is emitted once per enemy struck by an attack.
type HitEvent struct {
	TargetID  int
	Kind      AttackKind
	ComboStep int
	Damage    float64
	Crit      bool
	Lethal    bool
	Pos       cp.Vector
	Knockback cp.Vector
}

// HitHandler handles hit events.
type HitHandler func(evt HitEvent)

// HitEmitter fans hit events out to registered handlers. The simulation
// emits; cosmetic consumers (damage numbers, shake, particles) subscribe.
type HitEmitter struct {
	Handlers []HitHandler
}

func (e *HitEmitter) Subscribe(h HitHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

func (e *HitEmitter) Emit(evt HitEvent) {
	if e == nil {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
