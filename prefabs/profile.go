package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Profile is the flat record of movement/combat tunables the simulation reads
// every tick. The host owns it; merging a Patch between ticks must never
// reset in-flight timers, so the simulation keeps no derived copies.
type Profile struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	FastFallMult float64 `yaml:"fast_fall_mult"`

	RunSpeed    float64 `yaml:"run_speed"`
	GroundAccel float64 `yaml:"ground_accel"`
	GroundDecel float64 `yaml:"ground_decel"`
	AirAccel    float64 `yaml:"air_accel"`
	AirDecel    float64 `yaml:"air_decel"`

	JumpForce        float64 `yaml:"jump_force"`
	DoubleJumpForce  float64 `yaml:"double_jump_force"`
	JumpCutMult      float64 `yaml:"jump_cut_mult"`
	JumpBufferFrames int     `yaml:"jump_buffer_frames"`
	CoyoteFrames     int     `yaml:"coyote_frames"`

	WallSlideSpeed float64 `yaml:"wall_slide_speed"`
	WallJumpPushX  float64 `yaml:"wall_jump_push_x"`
	WallJumpPushY  float64 `yaml:"wall_jump_push_y"`

	DashSpeed          float64 `yaml:"dash_speed"`
	DashDurationFrames int     `yaml:"dash_duration_frames"`
	DashCooldownFrames int     `yaml:"dash_cooldown_frames"`
	DashRechargeFrames int     `yaml:"dash_recharge_frames"`
	MaxDashes          int     `yaml:"max_dashes"`
	DashChainFrames    int     `yaml:"dash_chain_frames"`

	AttackDurationFrames int     `yaml:"attack_duration_frames"`
	AttackCooldownFrames int     `yaml:"attack_cooldown_frames"`
	ComboWindowFrames    int     `yaml:"combo_window_frames"`
	ComboKeepAliveFrames int     `yaml:"combo_keep_alive_frames"`
	LungeSpeed           float64 `yaml:"lunge_speed"`
	LaunchForce          float64 `yaml:"launch_force"`

	BaseDamage       float64 `yaml:"base_damage"`
	ComboDamageScale float64 `yaml:"combo_damage_scale"`
	HitCountCap      int     `yaml:"hit_count_cap"`
	CritChance       float64 `yaml:"crit_chance"`

	MaxHealth          float64 `yaml:"max_health"`
	HurtIFrames        int     `yaml:"hurt_iframes"`
	RespawnDelayFrames int     `yaml:"respawn_delay_frames"`
	RespawnIFrames     int     `yaml:"respawn_iframes"`
}

// DefaultProfile returns the shipped baseline tuning. Units are pixels and
// pixels per tick at 60 ticks per second.
func DefaultProfile() *Profile {
	return &Profile{
		Gravity:      0.6,
		MaxFallSpeed: 14,
		FastFallMult: 1.6,

		RunSpeed:    9.0,
		GroundAccel: 1.2,
		GroundDecel: 1.6,
		AirAccel:    0.8,
		AirDecel:    0.4,

		JumpForce:        13.5,
		DoubleJumpForce:  12,
		JumpCutMult:      0.45,
		JumpBufferFrames: 8,
		CoyoteFrames:     6,

		WallSlideSpeed: 2.5,
		WallJumpPushX:  8,
		WallJumpPushY:  12.5,

		DashSpeed:          18,
		DashDurationFrames: 9,
		DashCooldownFrames: 15,
		DashRechargeFrames: 45,
		MaxDashes:          3,
		DashChainFrames:    40,

		AttackDurationFrames: 12,
		AttackCooldownFrames: 10,
		ComboWindowFrames:    18,
		ComboKeepAliveFrames: 90,
		LungeSpeed:           6,
		LaunchForce:          11,

		BaseDamage:       25,
		ComboDamageScale: 0.1,
		HitCountCap:      10,
		CritChance:       0.15,

		MaxHealth:          100,
		HurtIFrames:        45,
		RespawnDelayFrames: 60,
		RespawnIFrames:     90,
	}
}

// Patch mirrors Profile with pointer fields. Only non-nil fields are merged,
// so external tuning tools can send partial overrides.
type Patch struct {
	Gravity      *float64 `yaml:"gravity"`
	MaxFallSpeed *float64 `yaml:"max_fall_speed"`
	FastFallMult *float64 `yaml:"fast_fall_mult"`

	RunSpeed    *float64 `yaml:"run_speed"`
	GroundAccel *float64 `yaml:"ground_accel"`
	GroundDecel *float64 `yaml:"ground_decel"`
	AirAccel    *float64 `yaml:"air_accel"`
	AirDecel    *float64 `yaml:"air_decel"`

	JumpForce        *float64 `yaml:"jump_force"`
	DoubleJumpForce  *float64 `yaml:"double_jump_force"`
	JumpCutMult      *float64 `yaml:"jump_cut_mult"`
	JumpBufferFrames *int     `yaml:"jump_buffer_frames"`
	CoyoteFrames     *int     `yaml:"coyote_frames"`

	WallSlideSpeed *float64 `yaml:"wall_slide_speed"`
	WallJumpPushX  *float64 `yaml:"wall_jump_push_x"`
	WallJumpPushY  *float64 `yaml:"wall_jump_push_y"`

	DashSpeed          *float64 `yaml:"dash_speed"`
	DashDurationFrames *int     `yaml:"dash_duration_frames"`
	DashCooldownFrames *int     `yaml:"dash_cooldown_frames"`
	DashRechargeFrames *int     `yaml:"dash_recharge_frames"`
	MaxDashes          *int     `yaml:"max_dashes"`
	DashChainFrames    *int     `yaml:"dash_chain_frames"`

	AttackDurationFrames *int     `yaml:"attack_duration_frames"`
	AttackCooldownFrames *int     `yaml:"attack_cooldown_frames"`
	ComboWindowFrames    *int     `yaml:"combo_window_frames"`
	ComboKeepAliveFrames *int     `yaml:"combo_keep_alive_frames"`
	LungeSpeed           *float64 `yaml:"lunge_speed"`
	LaunchForce          *float64 `yaml:"launch_force"`

	BaseDamage       *float64 `yaml:"base_damage"`
	ComboDamageScale *float64 `yaml:"combo_damage_scale"`
	HitCountCap      *int     `yaml:"hit_count_cap"`
	CritChance       *float64 `yaml:"crit_chance"`

	MaxHealth          *float64 `yaml:"max_health"`
	HurtIFrames        *int     `yaml:"hurt_iframes"`
	RespawnDelayFrames *int     `yaml:"respawn_delay_frames"`
	RespawnIFrames     *int     `yaml:"respawn_iframes"`
}

// Apply merges the patch into the profile by per-field overwrite. Nil fields
// leave the current value untouched; an empty patch is a no-op.
func (p *Profile) Apply(patch *Patch) {
	if p == nil || patch == nil {
		return
	}
	mergeFloat(&p.Gravity, patch.Gravity)
	mergeFloat(&p.MaxFallSpeed, patch.MaxFallSpeed)
	mergeFloat(&p.FastFallMult, patch.FastFallMult)
	mergeFloat(&p.RunSpeed, patch.RunSpeed)
	mergeFloat(&p.GroundAccel, patch.GroundAccel)
	mergeFloat(&p.GroundDecel, patch.GroundDecel)
	mergeFloat(&p.AirAccel, patch.AirAccel)
	mergeFloat(&p.AirDecel, patch.AirDecel)
	mergeFloat(&p.JumpForce, patch.JumpForce)
	mergeFloat(&p.DoubleJumpForce, patch.DoubleJumpForce)
	mergeFloat(&p.JumpCutMult, patch.JumpCutMult)
	mergeInt(&p.JumpBufferFrames, patch.JumpBufferFrames)
	mergeInt(&p.CoyoteFrames, patch.CoyoteFrames)
	mergeFloat(&p.WallSlideSpeed, patch.WallSlideSpeed)
	mergeFloat(&p.WallJumpPushX, patch.WallJumpPushX)
	mergeFloat(&p.WallJumpPushY, patch.WallJumpPushY)
	mergeFloat(&p.DashSpeed, patch.DashSpeed)
	mergeInt(&p.DashDurationFrames, patch.DashDurationFrames)
	mergeInt(&p.DashCooldownFrames, patch.DashCooldownFrames)
	mergeInt(&p.DashRechargeFrames, patch.DashRechargeFrames)
	mergeInt(&p.MaxDashes, patch.MaxDashes)
	mergeInt(&p.DashChainFrames, patch.DashChainFrames)
	mergeInt(&p.AttackDurationFrames, patch.AttackDurationFrames)
	mergeInt(&p.AttackCooldownFrames, patch.AttackCooldownFrames)
	mergeInt(&p.ComboWindowFrames, patch.ComboWindowFrames)
	mergeInt(&p.ComboKeepAliveFrames, patch.ComboKeepAliveFrames)
	mergeFloat(&p.LungeSpeed, patch.LungeSpeed)
	mergeFloat(&p.LaunchForce, patch.LaunchForce)
	mergeFloat(&p.BaseDamage, patch.BaseDamage)
	mergeFloat(&p.ComboDamageScale, patch.ComboDamageScale)
	mergeInt(&p.HitCountCap, patch.HitCountCap)
	mergeFloat(&p.CritChance, patch.CritChance)
	mergeFloat(&p.MaxHealth, patch.MaxHealth)
	mergeInt(&p.HurtIFrames, patch.HurtIFrames)
	mergeInt(&p.RespawnDelayFrames, patch.RespawnDelayFrames)
	mergeInt(&p.RespawnIFrames, patch.RespawnIFrames)
}

func mergeFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func mergeInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// LoadProfile reads the shipped profile and applies any overrides present in
// the yaml on top of DefaultProfile.
func LoadProfile(name string) (*Profile, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	p := DefaultProfile()
	var patch Patch
	if err := yaml.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	p.Apply(&patch)
	return p, nil
}

// ParsePatch decodes a partial profile override document.
func ParsePatch(data []byte) (*Patch, error) {
	var patch Patch
	if err := yaml.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal patch: %w", err)
	}
	return &patch, nil
}
