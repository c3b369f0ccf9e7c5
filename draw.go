package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/revenant/common"
	"github.com/milk9111/revenant/obj"
)

// view maps world coordinates to screen space for one frame. Rendering is a
// pure read of the game state; nothing here mutates it.
type view struct {
	camX, camY float64
	zoom       float64
	shakeX     float64
	shakeY     float64
}

func (v view) point(x, y float64) (float32, float32) {
	sx := (x-v.camX)*v.zoom + baseWidth/2 + v.shakeX
	sy := (y-v.camY)*v.zoom + baseHeight/2 + v.shakeY
	return float32(sx), float32(sy)
}

func (v view) rect(r common.Rect) (float32, float32, float32, float32) {
	x, y := v.point(r.X, r.Y)
	return x, y, float32(r.Width * v.zoom), float32(r.Height * v.zoom)
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.scheduler.State()
	screen.Fill(color.NRGBA{R: 0x14, G: 0x12, B: 0x1c, A: 0xff})

	t := float64(s.Tick)
	v := view{
		camX:   s.Camera.Pos.X,
		camY:   s.Camera.Pos.Y,
		zoom:   s.Camera.Zoom,
		shakeX: math.Sin(t*1.3) * s.ScreenShake,
		shakeY: math.Cos(t*1.7) * s.ScreenShake,
	}

	g.drawWorld(screen, s, v)
	g.drawEntities(screen, s, v)
	g.drawEffects(screen, s, v)
	g.drawHUD(screen, s)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Tick: %d    FPS: %.2f", s.Tick, ebiten.ActualFPS()))

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawWorld(screen *ebiten.Image, s *obj.GameState, v view) {
	for _, p := range s.Level.Platforms {
		x, y, w, h := v.rect(p.Rect)
		clr := colornames.Dimgray
		if p.Kind == obj.PlatformOneway {
			clr = colornames.Darkslateblue
			h = float32(math.Max(float64(h*0.5), 2))
		}
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	}

	for i := range s.Level.POIs {
		poi := &s.Level.POIs[i]
		x, y := v.point(poi.Pos.X, poi.Pos.Y)
		vector.DrawFilledCircle(screen, x, y, float32(6*v.zoom), poi.Color, true)
	}
}

func (g *Game) drawEntities(screen *ebiten.Image, s *obj.GameState, v view) {
	for _, e := range s.Enemies {
		if e.Health.Dead {
			continue
		}
		clr := enemyColor(e)
		x, y, w, h := v.rect(e.Rect)
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)

		if aim, ok := e.TurretAim(); ok {
			cx, cy := v.point(e.Center().X, e.Center().Y)
			ax, ay := v.point(aim.X, aim.Y)
			vector.StrokeLine(screen, cx, cy, ax, ay, 1, colornames.Deepskyblue, true)
		}

		// Health sliver above anything that has taken damage.
		if e.Health.Current < e.Health.Max {
			frac := float32(e.Health.CurrentHP() / e.Health.MaxHP())
			vector.DrawFilledRect(screen, x, y-6, w, 3, colornames.Darkred, false)
			vector.DrawFilledRect(screen, x, y-6, w*frac, 3, colornames.Limegreen, false)
		}
	}

	p := s.Player
	for _, gh := range p.Ghosts {
		a := uint8(common.Clamp(gh.Alpha, 0, 1) * 160)
		gx, gy := v.point(gh.Pos.X-p.Rect.Width/2, gh.Pos.Y-p.Rect.Height/2)
		vector.DrawFilledRect(screen, gx, gy, float32(p.Rect.Width*v.zoom), float32(p.Rect.Height*v.zoom),
			color.NRGBA{R: 0x7f, G: 0xdb, B: 0xff, A: a}, false)
	}

	if !p.Dead {
		// Blink through the tail of an invincibility window.
		if p.Health.IFrames == 0 || (s.Tick/3)%2 == 0 {
			x, y, w, h := v.rect(p.Rect)
			vector.DrawFilledRect(screen, x, y, w, h, colornames.Whitesmoke, false)
		}
	}

	c := s.Companion
	for i, tp := range c.Trail {
		a := uint8(30 + i*10)
		tx, ty := v.point(tp.X, tp.Y)
		vector.DrawFilledCircle(screen, tx, ty, float32(3*v.zoom), color.NRGBA{R: 0xb2, G: 0x8d, B: 0xff, A: a}, true)
	}
	jitter := math.Sin(float64(s.Tick)*1.9) * c.Glitch * 4
	cx, cy := v.point(c.Pos.X+jitter, c.Pos.Y-jitter)
	vector.DrawFilledCircle(screen, cx, cy, float32(7*v.zoom), colornames.Mediumpurple, true)
}

func (g *Game) drawEffects(screen *ebiten.Image, s *obj.GameState, v view) {
	for _, sl := range s.Slashes {
		x, y, w, h := v.rect(sl.Rect)
		a := uint8(common.Clamp(float64(sl.Life)*18, 0, 120))
		vector.DrawFilledRect(screen, x, y, w, h, color.NRGBA{R: 0xff, G: 0xe8, B: 0xa3, A: a}, false)
	}

	for _, p := range s.Particles {
		x, y := v.point(p.Pos.X, p.Pos.Y)
		vector.DrawFilledCircle(screen, x, y, float32(2*v.zoom), p.Color, false)
	}

	for _, n := range s.DamageNumbers {
		x, y := v.point(n.Pos.X, n.Pos.Y)
		text := fmt.Sprintf("%.0f", n.Value)
		if n.Crit {
			text += "!"
		}
		ebitenutil.DebugPrintAt(screen, text, int(x), int(y))
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, s *obj.GameState) {
	p := s.Player

	vector.DrawFilledRect(screen, 20, 20, 204, 18, colornames.Black, false)
	frac := float32(p.Health.CurrentHP() / p.Health.MaxHP())
	vector.DrawFilledRect(screen, 22, 22, 200*frac, 14, colornames.Crimson, false)

	for i := 0; i < s.Profile.MaxDashes; i++ {
		clr := colornames.Gray
		if i >= p.DashCount {
			clr = colornames.Deepskyblue
		}
		vector.DrawFilledCircle(screen, float32(30+i*18), 52, 6, clr, true)
	}

	if p.HitCount > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d HITS", p.HitCount), 24, 64)
	}
	if s.Camera.Message != "" {
		ebitenutil.DebugPrintAt(screen, s.Camera.Message, baseWidth/2-len(s.Camera.Message)*3, baseHeight-40)
	}
	if p.Dead {
		ebitenutil.DebugPrintAt(screen, "DEAD", baseWidth/2-12, baseHeight/2)
	}
}

func enemyColor(e *obj.Enemy) color.Color {
	if e.FlashTimer > 0 {
		return colornames.White
	}
	switch e.Kind {
	case "turret":
		return colornames.Steelblue
	case "flyer":
		return colornames.Mediumorchid
	default:
		return colornames.Darkolivegreen
	}
}
