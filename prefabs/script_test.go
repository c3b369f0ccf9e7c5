package prefabs

import "testing"

func TestRunTuningScriptDefaultIsNoop(t *testing.T) {
	p := DefaultProfile()
	before := *p

	patch, err := RunTuningScript("tune.tengo", p)
	if err != nil {
		t.Fatalf("RunTuningScript: %v", err)
	}

	p.Apply(patch)
	if *p != before {
		t.Errorf("shipped example script changed the profile:\nbefore %+v\nafter  %+v", before, *p)
	}
}

func TestRunTuningScriptMissing(t *testing.T) {
	if _, err := RunTuningScript("nope.tengo", DefaultProfile()); err == nil {
		t.Error("expected an error for a missing script")
	}
}

func TestLoadProfileAppliesOverlay(t *testing.T) {
	p, err := LoadProfile("profile.yaml")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}

	// The shipped overlay pins the headline movement values.
	if p.RunSpeed != 9.0 {
		t.Errorf("RunSpeed = %v, want 9.0", p.RunSpeed)
	}
	if p.MaxDashes != 3 {
		t.Errorf("MaxDashes = %d, want 3", p.MaxDashes)
	}
	if p.Gravity != DefaultProfile().Gravity {
		t.Errorf("Gravity = %v, keys absent from the overlay keep defaults", p.Gravity)
	}
}
