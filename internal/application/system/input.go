package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem reads player controls from the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the held keys for one tick
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Jump  bool
}

// GetInput reads the current input state. Arrow keys and WASD move,
// space jumps.
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Horizontal returns -1, 0 or 1. Opposite keys cancel out.
func (in InputState) Horizontal() int {
	dir := 0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	return dir
}
