package obj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/revenant/common"
	"github.com/milk9111/revenant/prefabs"
)

func TestGroundAcceleration(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	require.Zero(t, s.Player.Vel.X)

	tick(s, Sample{Right: true})
	assert.InDelta(t, 1.2, s.Player.Vel.X, 1e-9, "one tick of ground accel")

	for i := 0; i < 7; i++ {
		tick(s, Sample{Right: true})
	}
	assert.InDelta(t, 9.0, s.Player.Vel.X, 1e-9, "velocity clamps at run speed after 8 ticks")

	tick(s, Sample{Right: true})
	assert.InDelta(t, 9.0, s.Player.Vel.X, 1e-9, "no overshoot past run speed")
}

func TestDashStart(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player

	require.Zero(t, p.DashCooldown)
	require.Zero(t, p.DashCount)

	tick(s, Sample{Dash: true})

	assert.True(t, p.Dashing)
	assert.Equal(t, 1, p.DashCount)
	assert.Equal(t, s.Profile.DashCooldownFrames, p.DashCooldown)
	assert.Equal(t, s.Profile.DashDurationFrames, p.Health.IFrames,
		"dash grants invincibility for the dash duration")
}

func TestDashChargeInvariant(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player

	sawMax := false
	for i := 0; i < 900; i++ {
		// Re-press every other tick so each press is a fresh edge.
		in := Sample{}
		if i%2 == 0 {
			in.Dash = true
		}
		tick(s, in)

		require.GreaterOrEqual(t, p.DashCount, 0, "tick %d", i)
		require.LessOrEqual(t, p.DashCount, s.Profile.MaxDashes, "tick %d", i)

		if p.DashCount == s.Profile.MaxDashes && !sawMax {
			sawMax = true
			assert.GreaterOrEqual(t, p.DashCooldown, s.Profile.DashCooldownFrames,
				"reaching max dashes must set at least the between-charge cooldown")
		}
	}
	assert.True(t, sawMax, "mashing dash for 900 ticks never exhausted the charges")
}

func TestGroundJumpAndBuffer(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player

	tick(s, Sample{Jump: true})
	assert.InDelta(t, -s.Profile.JumpForce, p.Vel.Y, 1e-9)
	assert.True(t, p.Jumping)
	assert.Zero(t, p.JumpBufferTimer, "buffer consumed by the jump")
}

func TestBufferedJumpFiresOnLanding(t *testing.T) {
	s := newTestState(t, 1)
	p := s.Player

	// Fall from the start position and press jump just above the floor. The
	// double jump is disabled so the press can only land via the buffer.
	p.CanDoubleJump = false
	pressed := false
	jumped := false
	for i := 0; i < 240; i++ {
		in := Sample{}
		if !pressed && p.Rect.Bottom() > 180 && p.Vel.Y > 0 {
			in.Jump = true
			pressed = true
		}
		tick(s, in)
		if pressed && p.Vel.Y < -5 {
			jumped = true
			break
		}
	}

	require.True(t, pressed, "never got close enough to the floor")
	assert.True(t, jumped, "buffered jump did not fire on landing")
}

func TestDoubleJump(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player

	tick(s, Sample{Jump: true})
	for i := 0; i < 5; i++ {
		tick(s, Sample{Jump: true})
	}
	require.False(t, p.Grounded)
	require.True(t, p.CanDoubleJump)

	tick(s, Sample{}) // release
	tick(s, Sample{Jump: true})
	assert.False(t, p.CanDoubleJump, "double jump charge consumed")
	assert.InDelta(t, -s.Profile.DoubleJumpForce, p.Vel.Y, 1e-9)

	// A third press while airborne does nothing.
	tick(s, Sample{})
	before := p.Vel.Y
	tick(s, Sample{Jump: true})
	assert.InDelta(t, before+s.Profile.Gravity, p.Vel.Y, 1e-9, "no triple jump")
}

func TestJumpCut(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player

	tick(s, Sample{Jump: true})
	tick(s, Sample{Jump: true})
	require.Negative(t, p.Vel.Y)
	rising := p.Vel.Y

	tick(s, Sample{}) // release while ascending
	assert.Less(t, math.Abs(p.Vel.Y), math.Abs(rising)*0.6, "jump cut must shorten the rise")
	assert.False(t, p.Jumping)
}

func TestComboStepCycle(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player

	press := func() {
		tick(s, Sample{Attack: true})
		tick(s, Sample{})
	}
	wait := func(n int) {
		for i := 0; i < n; i++ {
			tick(s, Sample{})
		}
	}

	require.Zero(t, p.ComboWindowTimer)
	press()
	assert.Equal(t, 0, p.ComboStep, "first attack with no window starts at step 0")

	wait(s.Profile.AttackCooldownFrames) // past cooldown, still inside the window
	require.Positive(t, p.ComboWindowTimer)
	press()
	assert.Equal(t, 1, p.ComboStep)

	wait(s.Profile.AttackCooldownFrames)
	press()
	assert.Equal(t, 2, p.ComboStep)

	wait(s.Profile.AttackCooldownFrames)
	press()
	assert.Equal(t, 0, p.ComboStep, "combo wraps modulo 3")

	// Let the window lapse entirely; the next press resets to step 0.
	press()
	wait(s.Profile.AttackCooldownFrames + s.Profile.ComboWindowFrames + 5)
	require.Zero(t, p.ComboWindowTimer)
	press()
	assert.Equal(t, 0, p.ComboStep, "expired window resets the combo")
}

func TestLauncherBypassesComboAndJumpBuffer(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player

	tick(s, Sample{Jump: true, Attack: true})

	assert.True(t, p.Attacking)
	assert.Zero(t, p.JumpBufferTimer, "launcher swallows the jump buffer")
	assert.True(t, p.CanDoubleJump)
	assert.InDelta(t, -s.Profile.LaunchForce+s.Profile.Gravity, p.Vel.Y, 1e-9,
		"launcher applies the upward self-impulse")
	assert.Zero(t, p.AttackCooldown, "launcher skips standard cooldown bookkeeping")
}

func TestDashAttackCancelsDashIntoSlowMo(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player

	tick(s, Sample{Dash: true})
	require.True(t, p.Dashing)

	tick(s, Sample{Dash: true, Attack: true})

	assert.False(t, p.Dashing, "dash-attack cancels the dash")
	assert.True(t, p.Attacking)
	assert.Greater(t, math.Abs(p.Vel.X), s.Profile.RunSpeed, "dash-attack keeps high forward velocity")
	assert.Equal(t, 0.3, s.TimeScale)
	assert.Positive(t, s.SlowMoTimer)
}

func TestAttackHitsEnemy(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player
	p.FacingRight = true

	e := s.AddEnemy(NewEnemy(prefabs.WalkerArchetype(), p.Center().X+40, p.Center().Y))
	startHP := e.Health.Current

	tick(s, Sample{Attack: true})

	assert.InDelta(t, startHP-s.Profile.BaseDamage, e.Health.Current, 1e-9,
		"step-0 hit with empty counter deals base damage")
	assert.Positive(t, e.FlashTimer)
	assert.Equal(t, EnemyHit, e.State)
	assert.Equal(t, 1, p.HitCount)
	assert.Equal(t, s.Profile.ComboKeepAliveFrames, p.ComboKeepAlive)
	assert.Positive(t, s.HitStopTimer)
	assert.NotEmpty(t, s.DamageNumbers, "hit spawns a damage number")
}

func TestDamageAndTickDeterministicRespawn(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player
	anchor := p.RespawnPos

	p.Health.Current = 10
	require.True(t, p.Damage(s, 25, p.Center().X+50))

	assert.Zero(t, p.Health.CurrentHP(), "externally visible health clamps at 0")
	assert.Zero(t, p.HitCount, "taking damage resets the hit counter immediately")
	assert.True(t, p.Health.Dead)
	assert.False(t, p.Dead, "dead state is entered by the next death check, not the hit")

	tick(s, Sample{})
	require.True(t, p.Dead)
	assert.Equal(t, s.Profile.RespawnDelayFrames, p.RespawnTimer)

	// While dead nothing else runs; a second death cannot trigger.
	deaths := 0
	for i := 0; i < s.Profile.RespawnDelayFrames; i++ {
		wasDead := p.Dead
		tick(s, Sample{})
		if !wasDead && p.Dead {
			deaths++
		}
	}
	assert.Zero(t, deaths, "death entered more than once per life")

	assert.False(t, p.Dead, "respawn countdown elapsed")
	assert.Equal(t, p.Health.Max, p.Health.Current)
	// The respawn tick itself already consumed one grace frame.
	assert.GreaterOrEqual(t, p.Health.IFrames, s.Profile.RespawnIFrames-1)
	assert.InDelta(t, anchor.X, p.Center().X, 1e-9, "respawn at the recorded anchor")
}

func TestDamageIgnoredDuringInvincibility(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player

	require.True(t, p.Damage(s, 10, 0))
	hpAfterFirst := p.Health.Current
	require.Positive(t, p.Health.IFrames)

	assert.False(t, p.Damage(s, 10, 0), "damage must be ignored during i-frames")
	assert.Equal(t, hpAfterFirst, p.Health.Current)
}

func TestKillPlaneTriggersDeath(t *testing.T) {
	s := newTestState(t, 1)
	settle(t, s)
	p := s.Player

	p.Rect.Y = s.Level.KillPlaneY + 10
	tick(s, Sample{})

	assert.True(t, p.Dead, "falling past the kill plane kills the player")
}

func TestWallSlideAndWallJump(t *testing.T) {
	s := newTestState(t, 1)
	s.Level.Platforms = append(s.Level.Platforms, Platform{
		Rect: common.Rect{X: 180, Y: -400, Width: 40, Height: 600},
		Kind: PlatformSolid,
	})
	settle(t, s)
	p := s.Player

	// Jump, then hold into the wall so the descent happens against it. The
	// release at tick 20 cuts the rise and starts the fall early.
	for i := 0; i < 40; i++ {
		tick(s, Sample{Right: true, Jump: i < 20})
	}

	require.False(t, p.Grounded)
	require.Equal(t, 1, p.WallDir, "right-side probe finds the wall")
	assert.True(t, p.WallSliding)
	assert.Equal(t, s.Profile.WallSlideSpeed, p.Vel.Y, "descent clamps to the slide speed")

	p.CanDoubleJump = false
	tick(s, Sample{Right: true, Jump: true})

	assert.Equal(t, -s.Profile.WallJumpPushX, p.Vel.X, "pushed away from the wall")
	assert.Equal(t, -s.Profile.WallJumpPushY, p.Vel.Y)
	assert.False(t, p.WallSliding)
	assert.True(t, p.CanDoubleJump, "wall jump restores the double jump")
	assert.False(t, p.FacingRight, "faces away from the wall")
}

func TestFastFallExceedsNormalTerminal(t *testing.T) {
	s := newTestState(t, 1)
	p := s.Player
	p.Rect.Y = -3000

	for i := 0; i < 60; i++ {
		tick(s, Sample{Down: true})
	}

	assert.Greater(t, p.Vel.Y, s.Profile.MaxFallSpeed, "down held in the air falls past the normal cap")
	assert.Equal(t, s.Profile.MaxFallSpeed*s.Profile.FastFallMult, p.Vel.Y)
}
