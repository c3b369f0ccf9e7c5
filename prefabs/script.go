package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"gopkg.in/yaml.v3"
)

// RunTuningScript executes a tengo tuning script against a snapshot of the
// active profile and returns the patch it produced. Scripts see the current
// values in a `profile` map and assign overrides into an `overrides` map:
//
//	overrides.run_speed = profile.run_speed * 1.1
//	overrides.coyote_frames = 8
//
// The script runs host-side, between ticks; it never touches live state.
func RunTuningScript(name string, p *Profile) (*Patch, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}

	snapshot, err := profileValues(p)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("profile", snapshot)
	_ = script.Add("overrides", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("prefabs: run script %s: %w", name, err)
	}

	raw := compiled.Get("overrides").Value()
	overrides, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("prefabs: script %s: overrides is %T, want map", name, raw)
	}
	if len(overrides) == 0 {
		return &Patch{}, nil
	}

	// Route through yaml so the script speaks the same keys as profile.yaml.
	data, err := yaml.Marshal(overrides)
	if err != nil {
		return nil, fmt.Errorf("prefabs: script %s: encode overrides: %w", name, err)
	}
	return ParsePatch(data)
}

func profileValues(p *Profile) (map[string]any, error) {
	if p == nil {
		p = DefaultProfile()
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("prefabs: encode profile: %w", err)
	}
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("prefabs: decode profile: %w", err)
	}
	return values, nil
}
