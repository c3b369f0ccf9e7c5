package obj

import (
	"golang.org/x/image/colornames"

	"github.com/milk9111/revenant/common"
	"github.com/milk9111/revenant/prefabs"
)

const (
	spawnYOffset = 40.0

	// Documented spawn weights: Flyer 30%, Turret 30%, Walker 40%.
	spawnFlyerWeight  = 0.3
	spawnTurretWeight = 0.6
)

// Spawner keeps a zone populated up to a cap. It owns the enemies it spawns
// and evicts them when they leave the zone.
type Spawner struct {
	ID       int
	Zone     common.Rect
	Max      int
	Interval int
	Timer    int
	Template *prefabs.EnemyTemplate

	owned []int
}

func NewSpawner(id int, spec prefabs.SpawnerSpec) *Spawner {
	return &Spawner{
		ID:       id,
		Zone:     common.Rect{X: spec.Zone.X, Y: spec.Zone.Y, Width: spec.Zone.Width, Height: spec.Zone.Height},
		Max:      spec.Max,
		Interval: spec.Interval,
		Timer:    spec.Interval,
		Template: spec.Template,
	}
}

// Owned returns the ids of currently owned enemies.
func (sp *Spawner) Owned() []int {
	return sp.owned
}

// Update prunes dead or escaped enemies and spawns replacements on a timer.
func (sp *Spawner) Update(s *GameState) {
	sp.pruneAndEvict(s)

	if len(sp.owned) >= sp.Max {
		return
	}

	if sp.Timer > 0 {
		sp.Timer--
	}
	if sp.Timer > 0 {
		return
	}

	e := sp.spawn(s)
	sp.owned = append(sp.owned, e.ID)
	sp.Timer = sp.Interval
}

// pruneAndEvict drops dead ids and force-kills enemies whose center drifts
// past the zone's horizontal or bottom bound. The top is open so flyers can
// climb above the zone without being culled.
func (sp *Spawner) pruneAndEvict(s *GameState) {
	kept := sp.owned[:0]
	for _, id := range sp.owned {
		e := s.EnemyByID(id)
		if e == nil || e.Health.Dead {
			continue
		}

		c := e.Center()
		outside := c.X < sp.Zone.X || c.X > sp.Zone.Right() || c.Y > sp.Zone.Bottom()
		if outside {
			e.Kill(s)
			s.SpawnBurst(c, 10, colornames.Mediumpurple)
			continue
		}
		kept = append(kept, id)
	}
	sp.owned = kept
}

// spawn rolls a weighted archetype, applies the spawner's template overrides
// last, and registers the enemy at a randomized interior X near the zone top.
func (sp *Spawner) spawn(s *GameState) *Enemy {
	roll := s.Rng.Float64()
	var arch prefabs.Archetype
	switch {
	case roll < spawnFlyerWeight:
		arch = prefabs.FlyerArchetype()
	case roll < spawnTurretWeight:
		arch = prefabs.TurretArchetype()
	default:
		arch = prefabs.WalkerArchetype()
	}
	arch = prefabs.ApplyTemplate(arch, sp.Template)

	margin := arch.Width/2 + 4
	x := sp.Zone.X + margin + s.Rng.Float64()*(sp.Zone.Width-2*margin)
	y := sp.Zone.Y + spawnYOffset

	e := s.AddEnemy(NewEnemy(arch, x, y))
	e.SpawnerID = sp.ID
	return e
}
