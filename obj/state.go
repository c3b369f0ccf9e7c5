package obj

import (
	"fmt"
	"math/rand"

	"golang.org/x/image/colornames"

	"github.com/milk9111/revenant/component"
	"github.com/milk9111/revenant/prefabs"
)

// GameState is the single aggregate the scheduler owns. Every tick function
// receives it explicitly; nothing in the simulation reaches for globals.
type GameState struct {
	Profile *prefabs.Profile
	Level   *Level

	Player    *Player
	Companion *Companion
	Camera    *Camera
	Enemies   []*Enemy
	Spawners  []*Spawner

	Particles     []Particle
	DamageNumbers []DamageNumber
	Slashes       []SlashVfx

	ScreenShake  float64
	HitStopTimer int

	// TimeScale multiplies how much real time feeds the tick accumulator.
	// SlowMoTimer counts down in real seconds; at zero TimeScale snaps to 1.
	TimeScale   float64
	SlowMoTimer float64

	Tick uint64
	Rng  *rand.Rand
	Hits *component.HitEmitter

	nextEnemyID int
}

// NewGameState deep-copies the level spec into a live session. The spec and
// profile templates stay unmodified so a replay with the same seed is
// identical.
func NewGameState(spec *prefabs.LevelSpec, profile *prefabs.Profile, seed int64) (*GameState, error) {
	level, err := NewLevel(spec)
	if err != nil {
		return nil, fmt.Errorf("building level %q: %w", spec.ID, err)
	}

	s := &GameState{
		Profile:   profile,
		Level:     level,
		TimeScale: 1.0,
		Rng:       rand.New(rand.NewSource(seed)),
		Hits:      &component.HitEmitter{},
	}

	s.Player = NewPlayer(level.Start, profile)
	s.Companion = NewCompanion(level.Start)
	s.Camera = NewCamera(level.Start)

	for _, e := range spec.Enemies {
		arch, ok := prefabs.ArchetypeByKind(e.Kind)
		if !ok {
			return nil, fmt.Errorf("level %q: unknown enemy kind %q", spec.ID, e.Kind)
		}
		arch = prefabs.ApplyTemplate(arch, e.Template)
		s.AddEnemy(NewEnemy(arch, e.X, e.Y))
	}

	for i, sp := range spec.Spawners {
		s.Spawners = append(s.Spawners, NewSpawner(i+1, sp))
	}

	// Cosmetic consumers hang off the hit stream so combat resolution never
	// has to know what a damage number is.
	s.Hits.Subscribe(func(ev component.HitEvent) {
		s.SpawnDamageNumber(ev.Pos, ev.Damage, ev.Crit)
		count := 6
		if ev.Lethal {
			count = 14
		}
		s.SpawnBurst(ev.Pos, count, colornames.Orangered)
	})

	return s, nil
}

// AddEnemy assigns the enemy a session-unique id and registers it.
func (s *GameState) AddEnemy(e *Enemy) *Enemy {
	s.nextEnemyID++
	e.ID = s.nextEnemyID
	s.Enemies = append(s.Enemies, e)
	return e
}

// EnemyByID returns the enemy with the given id, or nil.
func (s *GameState) EnemyByID(id int) *Enemy {
	for _, e := range s.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// LiveEnemies appends all non-dead enemies to dst and returns it.
func (s *GameState) LiveEnemies(dst []*Enemy) []*Enemy {
	for _, e := range s.Enemies {
		if !e.Health.Dead {
			dst = append(dst, e)
		}
	}
	return dst
}

// CompactEnemies drops dead enemies from the list. Death effects fire at kill
// time, so a dead entry has nothing left to do.
func (s *GameState) CompactEnemies() {
	live := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.Health.Dead {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.Enemies); i++ {
		s.Enemies[i] = nil
	}
	s.Enemies = live
}

// AdvanceAnimation steps every live entity's display frame counter.
func (s *GameState) AdvanceAnimation() {
	s.Player.AdvanceAnimation()
	for _, e := range s.Enemies {
		if !e.Health.Dead {
			e.AdvanceAnimation()
		}
	}
}

// TriggerHitStop freezes the simulation for the given tick count. A longer
// pending freeze is never shortened.
func (s *GameState) TriggerHitStop(ticks int) {
	if ticks > s.HitStopTimer {
		s.HitStopTimer = ticks
	}
}

// TriggerSlowMo forces the time scale low for a real-time duration.
func (s *GameState) TriggerSlowMo(scale, seconds float64) {
	s.TimeScale = scale
	if seconds > s.SlowMoTimer {
		s.SlowMoTimer = seconds
	}
}
