package prefabs

// Archetype holds the per-kind baseline stats an enemy spawns with.
type Archetype struct {
	Kind           string  `yaml:"kind"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Health         float64 `yaml:"health"`
	MoveSpeed      float64 `yaml:"move_speed"`
	DetectionRange float64 `yaml:"detection_range"`
	AttackRange    float64 `yaml:"attack_range"`
	PatrolRange    float64 `yaml:"patrol_range"`
	ContactDamage  float64 `yaml:"contact_damage"`
	AttackCooldown int     `yaml:"attack_cooldown"`
}

// EnemyTemplate is a partial stat override carried by spawners and level
// enemy placements. Field precedence: template overrides archetype defaults;
// nothing overrides identity (kind and id are never merged).
type EnemyTemplate struct {
	Health         *float64 `yaml:"health"`
	MoveSpeed      *float64 `yaml:"move_speed"`
	DetectionRange *float64 `yaml:"detection_range"`
	AttackRange    *float64 `yaml:"attack_range"`
	PatrolRange    *float64 `yaml:"patrol_range"`
	ContactDamage  *float64 `yaml:"contact_damage"`
	AttackCooldown *int     `yaml:"attack_cooldown"`
}

// ApplyTemplate merges the template into a copy of the archetype and returns
// it. The archetype's Kind is preserved unconditionally.
func ApplyTemplate(base Archetype, t *EnemyTemplate) Archetype {
	if t == nil {
		return base
	}
	mergeFloat(&base.Health, t.Health)
	mergeFloat(&base.MoveSpeed, t.MoveSpeed)
	mergeFloat(&base.DetectionRange, t.DetectionRange)
	mergeFloat(&base.AttackRange, t.AttackRange)
	mergeFloat(&base.PatrolRange, t.PatrolRange)
	mergeFloat(&base.ContactDamage, t.ContactDamage)
	mergeInt(&base.AttackCooldown, t.AttackCooldown)
	return base
}

// WalkerArchetype returns the baseline Walker stats.
func WalkerArchetype() Archetype {
	return Archetype{
		Kind:           "walker",
		Width:          40,
		Height:         48,
		Health:         60,
		MoveSpeed:      2.2,
		DetectionRange: 240,
		AttackRange:    60,
		PatrolRange:    120,
		ContactDamage:  10,
		AttackCooldown: 75,
	}
}

// TurretArchetype returns the baseline Turret stats.
func TurretArchetype() Archetype {
	return Archetype{
		Kind:           "turret",
		Width:          44,
		Height:         44,
		Health:         80,
		MoveSpeed:      1.2,
		DetectionRange: 420,
		AttackRange:    340,
		PatrolRange:    0,
		ContactDamage:  8,
		AttackCooldown: 150,
	}
}

// FlyerArchetype returns the baseline Flyer stats.
func FlyerArchetype() Archetype {
	return Archetype{
		Kind:           "flyer",
		Width:          36,
		Height:         32,
		Health:         40,
		MoveSpeed:      3.2,
		DetectionRange: 320,
		AttackRange:    180,
		PatrolRange:    0,
		ContactDamage:  12,
		AttackCooldown: 110,
	}
}

// ArchetypeByKind resolves a kind tag to its baseline archetype.
func ArchetypeByKind(kind string) (Archetype, bool) {
	switch kind {
	case "walker":
		return WalkerArchetype(), true
	case "turret":
		return TurretArchetype(), true
	case "flyer":
		return FlyerArchetype(), true
	}
	return Archetype{}, false
}
