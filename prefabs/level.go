package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LevelSpec is the static level record loaded once at scene start. The
// simulation deep-copies it into live state so specs stay immutable across
// replays.
type LevelSpec struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Start      VecSpec        `yaml:"start"`
	KillPlaneY float64        `yaml:"kill_plane_y"`
	Platforms  []PlatformSpec `yaml:"platforms"`
	Enemies    []EnemySpec    `yaml:"enemies"`
	Spawners   []SpawnerSpec  `yaml:"spawners"`
	POIs       []POISpec      `yaml:"pois"`
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"w"`
	Height float64 `yaml:"h"`
	Kind   string  `yaml:"kind"` // "solid" (default) or "oneway"
}

type EnemySpec struct {
	Kind     string         `yaml:"kind"`
	X        float64        `yaml:"x"`
	Y        float64        `yaml:"y"`
	Template *EnemyTemplate `yaml:"template"`
}

type SpawnerSpec struct {
	Zone     PlatformSpec   `yaml:"zone"`
	Max      int            `yaml:"max"`
	Interval int            `yaml:"interval"`
	Template *EnemyTemplate `yaml:"template"`
}

type POISpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Radius  float64 `yaml:"radius"`
	Zoom    float64 `yaml:"zoom"`
	Message string  `yaml:"message"`
	Color   string  `yaml:"color"`
}

// LoadLevelSpec loads and validates a level document from the prefab store.
// A missing platform list is a fatal load-time condition; the tick loop never
// revalidates.
func LoadLevelSpec(name string) (*LevelSpec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load level %s: %w", name, err)
	}
	return ParseLevelSpec(data)
}

// ParseLevelSpec decodes and validates a level document.
func ParseLevelSpec(data []byte) (*LevelSpec, error) {
	var spec LevelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal level: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the load-time contract for a level record.
func (s *LevelSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("nil level spec")
	}
	if len(s.Platforms) == 0 {
		return fmt.Errorf("level %q has no platforms", s.ID)
	}
	for i, p := range s.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %d has non-positive size", i)
		}
		switch p.Kind {
		case "", "solid", "oneway":
		default:
			return fmt.Errorf("platform %d has unknown kind %q", i, p.Kind)
		}
	}
	for i, e := range s.Enemies {
		if _, ok := ArchetypeByKind(e.Kind); !ok {
			return fmt.Errorf("enemy %d has unknown kind %q", i, e.Kind)
		}
	}
	for i, sp := range s.Spawners {
		if sp.Max <= 0 {
			return fmt.Errorf("spawner %d has non-positive population cap", i)
		}
		if sp.Interval <= 0 {
			return fmt.Errorf("spawner %d has non-positive interval", i)
		}
	}
	return nil
}
