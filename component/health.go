package component

// Health is a reusable health component for any entity that can take damage.
type Health struct {
	Max     float64
	Current float64
	IFrames int
	Dead    bool
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage applies damage if not in i-frames. Returns true if damage was
// applied. Current never drops below zero.
func (h *Health) ApplyDamage(amount float64) bool {
	if h == nil || h.Dead || h.IFrames > 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
	}
	return true
}

// StartIFrames sets invulnerability frames. A shorter grant never truncates
// an active window.
func (h *Health) StartIFrames(frames int) {
	if h == nil || frames <= h.IFrames {
		return
	}
	h.IFrames = frames
}

// Tick advances the i-frame timer by one frame.
func (h *Health) Tick() {
	if h == nil || h.IFrames <= 0 {
		return
	}
	h.IFrames--
}

// Revive restores full health and clears the dead flag.
func (h *Health) Revive() {
	if h == nil {
		return
	}
	h.Current = h.Max
	h.Dead = false
	h.IFrames = 0
}

// CurrentHP returns the current health value clamped to [0, Max].
func (h *Health) CurrentHP() float64 {
	if h == nil {
		return 0
	}
	if h.Current < 0 {
		return 0
	}
	if h.Current > h.Max {
		return h.Max
	}
	return h.Current
}

// MaxHP returns the maximum health value.
func (h *Health) MaxHP() float64 {
	if h == nil {
		return 0
	}
	return h.Max
}
