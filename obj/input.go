package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sample is the per-tick snapshot of the six input commands. The simulation
// edge-detects against the previous tick's sample itself, so providers only
// report current state.
type Sample struct {
	Left   bool
	Right  bool
	Jump   bool
	Down   bool
	Dash   bool
	Attack bool
}

// MoveX collapses the horizontal commands to -1/0/1.
func (s Sample) MoveX() float64 {
	var x float64
	if s.Left {
		x -= 1
	}
	if s.Right {
		x += 1
	}
	return x
}

// Input polls the keyboard and first gamepad into a Sample once per tick.
type Input struct {
	current Sample
}

func NewInput() *Input {
	return &Input{}
}

// Update polls device state. Called once per host frame, before advancing
// the scheduler.
func (i *Input) Update() {
	var s Sample

	s.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	s.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	s.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)
	s.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	s.Dash = ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	s.Attack = ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			s.Left = true
		} else if leftX > 0.3 {
			s.Right = true
		}
		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftY > 0.5 {
			s.Down = true
		}
		s.Jump = s.Jump || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		s.Attack = s.Attack || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		s.Dash = s.Dash || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	i.current = s
}

// Sample returns the current command snapshot.
func (i *Input) Sample() Sample {
	if i == nil {
		return Sample{}
	}
	return i.current
}
