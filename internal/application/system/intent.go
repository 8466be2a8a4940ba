package system

// Intent represents an action the player wants to perform this tick
type Intent interface {
	isIntent()
}

// MoveIntent represents a horizontal movement intention
type MoveIntent struct {
	Direction int // -1 left, 0 stop, 1 right
}

func (MoveIntent) isIntent() {}

// JumpIntent represents a jump intention
type JumpIntent struct {
	Force float64
}

func (JumpIntent) isIntent() {}

// ClimbIntent represents a ladder intention
type ClimbIntent struct {
	Up   bool
	Down bool
}

func (ClimbIntent) isIntent() {}
