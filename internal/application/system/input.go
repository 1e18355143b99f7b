package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
)

// RawInput is one step of player intent. JumpPressed and DashPressed are
// edges (true for the step the key went down), JumpHeld is level.
type RawInput struct {
	JumpPressed bool
	JumpHeld    bool
	DashPressed bool
	Move        entity.Vec2 // each axis in [-1,1]; Y positive is up
}

// InputSystem polls the keyboard into RawInput
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current input state.
// A/D or arrows move, W/S or arrows aim up/down, Space jumps, Shift dashes.
func (s *InputSystem) Poll() RawInput {
	var move entity.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y -= 1
	}

	return RawInput{
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		JumpHeld:    ebiten.IsKeyPressed(ebiten.KeySpace),
		DashPressed: inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight),
		Move:        move,
	}
}
