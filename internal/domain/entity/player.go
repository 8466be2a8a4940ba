package entity

import "github.com/younwookim/girders/internal/domain/geom"

// PlayerState is the discrete movement state of the player
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateRunning
	StateJumping
	StateClimbing
)

// String returns the string representation of the player state
func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateJumping:
		return "Jumping"
	case StateClimbing:
		return "Climbing"
	default:
		return "Unknown"
	}
}

// playerTransitions lists the states reachable from each state.
// Staying in the same state is always allowed.
var playerTransitions = map[PlayerState][]PlayerState{
	StateIdle:     {StateRunning, StateJumping, StateClimbing},
	StateRunning:  {StateIdle, StateJumping, StateClimbing},
	StateJumping:  {StateIdle, StateRunning},
	StateClimbing: {StateIdle},
}

// CanTransition reports whether the state machine allows s -> to
func (s PlayerState) CanTransition(to PlayerState) bool {
	if s == to {
		return true
	}
	for _, next := range playerTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// PlayerStats holds the player's movement constants (per tick)
type PlayerStats struct {
	Width      float64
	Height     float64
	Speed      float64
	JumpForce  float64 // negative: up is -y
	Gravity    float64
	ClimbSpeed float64
}

// Player represents the player entity
type Player struct {
	X, Y          float64 // top-left corner
	Width, Height float64
	VY            float64

	Speed      float64
	JumpForce  float64
	Gravity    float64
	ClimbSpeed float64

	State       PlayerState
	FacingRight bool
	Ladder      *Ladder // ladder being climbed, not owned

	// Supported is set by the level each tick when a platform holds the player
	Supported bool
	// JumpHeld latches the jump key so a held key triggers a single jump
	JumpHeld bool

	SpawnX, SpawnY float64
	Deaths         int
}

// NewPlayer creates a player at the spawn point
func NewPlayer(spawnX, spawnY float64, stats PlayerStats) *Player {
	p := &Player{
		Width:      stats.Width,
		Height:     stats.Height,
		Speed:      stats.Speed,
		JumpForce:  stats.JumpForce,
		Gravity:    stats.Gravity,
		ClimbSpeed: stats.ClimbSpeed,
		SpawnX:     spawnX,
		SpawnY:     spawnY,
	}
	p.Reset()
	return p
}

// Reset puts the player back at the spawn point at rest
func (p *Player) Reset() {
	p.X = p.SpawnX
	p.Y = p.SpawnY
	p.VY = 0
	p.State = StateIdle
	p.FacingRight = true
	p.Ladder = nil
	p.Supported = false
}

// Die resets the player and counts the death
func (p *Player) Die() {
	p.Deaths++
	p.Reset()
}

// Transition moves to the given state if the state machine allows it
func (p *Player) Transition(to PlayerState) bool {
	if !p.State.CanTransition(to) {
		return false
	}
	p.State = to
	if to != StateClimbing {
		p.Ladder = nil
	}
	return true
}

// Land stops vertical motion and ends a jump
func (p *Player) Land() {
	p.VY = 0
	if p.State == StateJumping {
		p.Transition(StateIdle)
	}
}

// IsClimbing returns true while the player is on a ladder
func (p *Player) IsClimbing() bool {
	return p.State == StateClimbing
}

// IsJumping returns true while the player is airborne from a jump
func (p *Player) IsJumping() bool {
	return p.State == StateJumping
}

// Bounds returns the player's bounding box
func (p *Player) Bounds() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the horizontal center
func (p *Player) CenterX() float64 {
	return p.X + p.Width/2
}

// Bottom returns the y coordinate of the player's feet
func (p *Player) Bottom() float64 {
	return p.Y + p.Height
}
