package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/revenant/common"
	"github.com/milk9111/revenant/component"
	"github.com/milk9111/revenant/prefabs"
)

const (
	playerWidth  = 32.0
	playerHeight = 48.0

	// Respawn anchor only moves while grounded and nearly stationary.
	anchorSpeedEps = 0.5

	ghostRecordEvery = 2
)

// Player is the single controllable entity. Created once at level load,
// reset on death, never destroyed.
type Player struct {
	Rect   common.Rect
	Vel    cp.Vector
	Health *component.Health

	Grounded      bool
	Dashing       bool
	WallSliding   bool
	Jumping       bool
	CanDoubleJump bool
	Attacking     bool
	Dead          bool
	FacingRight   bool

	DashTimer        int
	DashCooldown     int
	DashChainTimer   int
	AttackTimer      int
	AttackCooldown   int
	CoyoteTimer      int
	JumpBufferTimer  int
	ComboWindowTimer int
	ComboKeepAlive   int
	RespawnTimer     int

	DashCount int
	ComboStep int
	HitCount  int

	WallDir    int
	RespawnPos cp.Vector

	Ghosts    []Ghost
	AnimFrame int

	dashDirX   float64
	ghostClock int
	animClock  int

	prevIn Sample
}

func NewPlayer(start cp.Vector, profile *prefabs.Profile) *Player {
	return NewPlayerAt(start, profile.MaxHealth)
}

// NewPlayerAt builds a player centered on start with the given max health.
func NewPlayerAt(start cp.Vector, maxHealth float64) *Player {
	return &Player{
		Rect: common.Rect{
			X:      start.X - playerWidth/2,
			Y:      start.Y - playerHeight/2,
			Width:  playerWidth,
			Height: playerHeight,
		},
		Health:        component.NewHealth(maxHealth),
		FacingRight:   true,
		CanDoubleJump: true,
		RespawnPos:    start,
	}
}

// Center returns the hitbox center.
func (p *Player) Center() cp.Vector {
	return p.Rect.Center()
}

// Update runs one simulation tick for the player in the order: death/respawn,
// timers and input edges, combat, dash (which may consume the whole tick),
// ghost decay, horizontal movement, wall probe, gravity, jump resolution,
// movement application.
func (p *Player) Update(s *GameState, in Sample) {
	if p.updateDeadState(s) {
		p.prevIn = in
		return
	}

	jumpPressed := in.Jump && !p.prevIn.Jump
	jumpReleased := !in.Jump && p.prevIn.Jump
	dashPressed := in.Dash && !p.prevIn.Dash
	attackPressed := in.Attack && !p.prevIn.Attack
	p.prevIn = in

	p.tickTimers(s)

	if jumpPressed {
		p.JumpBufferTimer = s.Profile.JumpBufferFrames
	}

	if attackPressed {
		p.startAttack(s, in)
	}

	if p.tickDash(s, in, dashPressed) {
		return
	}

	p.decayGhosts()
	p.applyHorizontal(s, in)
	p.updateWall(s, in)
	p.applyGravity(s, in)
	p.resolveJump(s, jumpReleased)
	p.applyMovement(s)
}

// updateDeadState handles the death check and the respawn countdown. Returns
// true when the rest of the tick must be skipped.
func (p *Player) updateDeadState(s *GameState) bool {
	if p.Dead {
		if p.RespawnTimer > 0 {
			p.RespawnTimer--
		}
		if p.RespawnTimer == 0 {
			p.respawn(s)
		}
		return p.Dead
	}

	if p.Health.Dead || p.Rect.Y > s.Level.KillPlaneY {
		p.Dead = true
		p.RespawnTimer = s.Profile.RespawnDelayFrames
		s.AddShake(10)
		s.SpawnBurst(p.Center(), 18, colornames.Crimson)
		return true
	}
	return false
}

func (p *Player) respawn(s *GameState) {
	p.Dead = false
	p.Health.Revive()
	p.Health.StartIFrames(s.Profile.RespawnIFrames)
	p.Vel = cp.Vector{}
	p.Rect.X = p.RespawnPos.X - p.Rect.Width/2
	p.Rect.Y = p.RespawnPos.Y - p.Rect.Height/2

	p.Dashing = false
	p.WallSliding = false
	p.Jumping = false
	p.Attacking = false
	p.CanDoubleJump = true
	p.DashTimer = 0
	p.DashCooldown = 0
	p.DashChainTimer = 0
	p.AttackTimer = 0
	p.AttackCooldown = 0
	p.ComboWindowTimer = 0
	p.ComboKeepAlive = 0
	p.DashCount = 0
	p.ComboStep = 0
	p.HitCount = 0
	p.Ghosts = p.Ghosts[:0]
}

// tickTimers decrements every frame timer at most once, never below zero,
// and applies the timer-expiry side effects.
func (p *Player) tickTimers(s *GameState) {
	p.Health.Tick()

	if p.JumpBufferTimer > 0 {
		p.JumpBufferTimer--
	}
	if p.CoyoteTimer > 0 {
		p.CoyoteTimer--
	}
	if p.AttackTimer > 0 {
		p.AttackTimer--
		if p.AttackTimer == 0 {
			p.Attacking = false
		}
	}
	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}
	if p.ComboWindowTimer > 0 {
		p.ComboWindowTimer--
	}
	if p.ComboKeepAlive > 0 {
		p.ComboKeepAlive--
		if p.ComboKeepAlive == 0 {
			p.HitCount = 0
		}
	}

	if p.DashCooldown > 0 {
		p.DashCooldown--
		// The long post-exhaustion cooldown doubles as the recharge signal.
		if p.DashCooldown == 0 && p.DashCount >= s.Profile.MaxDashes {
			p.DashCount = 0
		}
	}
	if p.DashChainTimer > 0 {
		p.DashChainTimer--
		if p.DashChainTimer == 0 && p.DashCount > 0 && p.DashCount < s.Profile.MaxDashes {
			p.DashCount = 0
		}
	}
}

// tickDash starts or continues a dash. A dashing tick short-circuits the rest
// of the update.
func (p *Player) tickDash(s *GameState, in Sample, dashPressed bool) bool {
	if dashPressed && !p.Dashing && p.DashCooldown == 0 && p.DashCount < s.Profile.MaxDashes {
		p.startDash(s, in)
	}
	if !p.Dashing {
		return false
	}

	p.Vel.X = p.dashDirX * s.Profile.DashSpeed
	p.Vel.Y = 0

	p.ghostClock++
	if p.ghostClock%ghostRecordEvery == 0 {
		p.Ghosts = append(p.Ghosts, Ghost{
			Pos:         p.Center(),
			FacingRight: p.FacingRight,
			Frame:       p.AnimFrame,
			Alpha:       0.7,
		})
	}

	p.applyMovement(s)

	p.DashTimer--
	if p.DashTimer <= 0 {
		p.endDash(s)
	}
	return true
}

func (p *Player) startDash(s *GameState, in Sample) {
	dir := in.MoveX()
	if dir == 0 {
		dir = 1
		if !p.FacingRight {
			dir = -1
		}
	}
	p.dashDirX = dir
	p.FacingRight = dir > 0

	p.Dashing = true
	p.WallSliding = false
	p.DashTimer = s.Profile.DashDurationFrames
	p.Health.StartIFrames(s.Profile.DashDurationFrames)
	p.DashCount++
	if p.DashCount >= s.Profile.MaxDashes {
		p.DashCooldown = s.Profile.DashRechargeFrames
	} else {
		p.DashCooldown = s.Profile.DashCooldownFrames
	}
	p.DashChainTimer = s.Profile.DashChainFrames
	p.ghostClock = 0
}

func (p *Player) endDash(s *GameState) {
	p.Dashing = false
	p.DashTimer = 0
	// Dash exit bleeds speed back down to run speed; the dash-attack cancel
	// path keeps the full dash velocity instead.
	p.Vel.X = common.Clamp(p.Vel.X, -s.Profile.RunSpeed, s.Profile.RunSpeed)
}

func (p *Player) decayGhosts() {
	ghosts := p.Ghosts[:0]
	for _, g := range p.Ghosts {
		g.Alpha -= ghostAlphaDecay
		if g.Alpha > 0 {
			ghosts = append(ghosts, g)
		}
	}
	p.Ghosts = ghosts
}

func (p *Player) applyHorizontal(s *GameState, in Sample) {
	move := in.MoveX()
	target := move * s.Profile.RunSpeed

	var rate float64
	switch {
	case p.Grounded && move != 0:
		rate = s.Profile.GroundAccel
	case p.Grounded && p.Attacking:
		// Attacking on the ground slides instead of stopping.
		rate = s.Profile.GroundDecel / 2
	case p.Grounded:
		rate = s.Profile.GroundDecel
	case move != 0:
		rate = s.Profile.AirAccel
	default:
		rate = s.Profile.AirDecel
	}
	p.Vel.X = common.Approach(p.Vel.X, target, rate)

	if move != 0 && !p.Dashing {
		p.FacingRight = move > 0
	}
}

func (p *Player) updateWall(s *GameState, in Sample) {
	p.WallDir = WallDir(p.Rect, s.Level.Platforms)

	holdingInto := in.MoveX() == 0 || int(common.Sign(in.MoveX())) == p.WallDir
	p.WallSliding = !p.Grounded && p.Vel.Y > 0 && p.WallDir != 0 && holdingInto
}

func (p *Player) applyGravity(s *GameState, in Sample) {
	gravity := s.Profile.Gravity
	terminal := s.Profile.MaxFallSpeed
	if in.Down && !p.Grounded && !p.WallSliding {
		gravity *= s.Profile.FastFallMult
		terminal *= s.Profile.FastFallMult
	}

	p.Vel.Y = math.Min(p.Vel.Y+gravity, terminal)

	if p.WallSliding && p.Vel.Y > s.Profile.WallSlideSpeed {
		p.Vel.Y = common.Approach(p.Vel.Y, s.Profile.WallSlideSpeed, 1.5)
	}
}

// resolveJump evaluates the mutually exclusive jump branches in priority
// order: wall jump, ground/coyote jump, double jump. Releasing jump while
// ascending cuts the rise once.
func (p *Player) resolveJump(s *GameState, jumpReleased bool) {
	switch {
	case p.JumpBufferTimer > 0 && p.WallSliding:
		p.JumpBufferTimer = 0
		p.Vel.X = float64(-p.WallDir) * s.Profile.WallJumpPushX
		p.Vel.Y = -s.Profile.WallJumpPushY
		p.Jumping = true
		p.WallSliding = false
		p.CanDoubleJump = true
		p.FacingRight = p.WallDir < 0

	case p.JumpBufferTimer > 0 && (p.Grounded || p.CoyoteTimer > 0):
		p.JumpBufferTimer = 0
		p.CoyoteTimer = 0
		p.Vel.Y = -s.Profile.JumpForce
		p.Jumping = true
		p.Grounded = false
		p.CanDoubleJump = true

	case p.JumpBufferTimer > 0 && !p.Grounded && !p.WallSliding && p.CanDoubleJump:
		p.JumpBufferTimer = 0
		p.CanDoubleJump = false
		p.Vel.Y = -s.Profile.DoubleJumpForce
		p.Jumping = true
	}

	if jumpReleased && p.Jumping && p.Vel.Y < 0 {
		p.Vel.Y *= s.Profile.JumpCutMult
		p.Jumping = false
	}
}

func (p *Player) applyMovement(s *GameState) {
	res := MoveAndCollide(&p.Rect, &p.Vel, s.Level.Platforms)
	p.Grounded = res.Grounded

	if p.Grounded {
		p.CoyoteTimer = s.Profile.CoyoteFrames
		p.CanDoubleJump = true
		p.Jumping = false

		if math.Abs(p.Vel.X) < anchorSpeedEps {
			p.RespawnPos = p.Center()
		}
	}
}

// AdvanceAnimation steps the display frame counter. Purely cosmetic; the
// render layer maps it onto whatever sheet it has loaded.
func (p *Player) AdvanceAnimation() {
	p.animClock++
	if p.animClock%6 == 0 {
		p.AnimFrame++
	}
}
