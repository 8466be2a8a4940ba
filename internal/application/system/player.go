package system

import (
	"github.com/younwookim/girders/internal/domain/entity"
	"github.com/younwookim/girders/internal/domain/geom"
)

// groundEpsilon is how close to the floor the player's feet must be to jump
const groundEpsilon = 0.5

// PlayerSystem turns input into player movement with an Intent & Apply model.
// Gravity is not applied here; the level adds it when nothing supports the
// player.
type PlayerSystem struct {
	field entity.Playfield
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(field entity.Playfield) *PlayerSystem {
	return &PlayerSystem{field: field}
}

// Update applies one tick of input to the player
func (s *PlayerSystem) Update(player *entity.Player, input InputState, ladders []*entity.Ladder) {
	s.Apply(player, s.Intents(player, input), ladders)
	player.JumpHeld = input.Jump

	if !player.IsClimbing() {
		player.Y += player.VY
	}

	s.clampFloor(player)
	s.clampBounds(player)
}

// Intents converts held keys into intents. Jump only fires on the tick the
// key goes down.
func (s *PlayerSystem) Intents(player *entity.Player, input InputState) []Intent {
	intents := make([]Intent, 0, 3)
	if input.Up || input.Down {
		intents = append(intents, ClimbIntent{Up: input.Up, Down: input.Down})
	}
	intents = append(intents, MoveIntent{Direction: input.Horizontal()})
	if input.Jump && !player.JumpHeld {
		intents = append(intents, JumpIntent{Force: player.JumpForce})
	}
	return intents
}

// Apply executes intents in order. While the player is on a ladder only
// climbing is processed.
func (s *PlayerSystem) Apply(player *entity.Player, intents []Intent, ladders []*entity.Ladder) {
	climb := ClimbIntent{}
	for _, in := range intents {
		if c, ok := in.(ClimbIntent); ok {
			climb = c
		}
	}
	if s.climb(player, climb, ladders) {
		return
	}

	for _, in := range intents {
		switch in := in.(type) {
		case MoveIntent:
			s.move(player, in.Direction)
		case JumpIntent:
			s.jump(player, in.Force)
		}
	}
}

// climb handles grabbing and moving along a ladder. It returns true while the
// player is climbing.
func (s *PlayerSystem) climb(player *entity.Player, in ClimbIntent, ladders []*entity.Ladder) bool {
	if !player.IsClimbing() {
		ladder := findLadder(player, ladders, in.Up, in.Down)
		if ladder == nil || !player.Transition(entity.StateClimbing) {
			return false
		}
		player.Ladder = ladder
		player.X = ladder.CenteredX(player.Width)
	}

	ladder := player.Ladder
	if ladder == nil {
		player.Transition(entity.StateIdle)
		return false
	}
	player.VY = 0

	switch {
	case in.Up:
		player.Y -= player.ClimbSpeed
		if player.Bottom() <= ladder.Y {
			player.Y = ladder.Y - player.Height
			player.Transition(entity.StateIdle)
		}
	case in.Down:
		player.Y += player.ClimbSpeed
		if player.Bottom() >= ladder.Bottom() {
			player.Y = ladder.Bottom() - player.Height
			player.Transition(entity.StateIdle)
		}
	}
	return true
}

// findLadder returns a ladder the player can grab in the pressed direction.
// A ladder the player already stands at the end of is skipped.
func findLadder(player *entity.Player, ladders []*entity.Ladder, up, down bool) *entity.Ladder {
	body := player.Bounds()
	for _, l := range ladders {
		if !l.ContainsForClimb(body, up, down) {
			continue
		}
		if up && player.Bottom() <= l.Y+entity.LadderTolerance {
			continue
		}
		if down && !up && player.Bottom() >= l.Bottom()-entity.LadderTolerance {
			continue
		}
		return l
	}
	return nil
}

func (s *PlayerSystem) move(player *entity.Player, dir int) {
	if dir == 0 {
		if player.State == entity.StateRunning {
			player.Transition(entity.StateIdle)
		}
		return
	}

	player.X += float64(dir) * player.Speed
	player.FacingRight = dir > 0
	if player.State == entity.StateIdle {
		player.Transition(entity.StateRunning)
	}
}

func (s *PlayerSystem) jump(player *entity.Player, force float64) {
	if !s.grounded(player) {
		return
	}
	if !player.Transition(entity.StateJumping) {
		return
	}
	player.VY = force
	player.Supported = false
}

// grounded reports whether a platform or the floor holds the player
func (s *PlayerSystem) grounded(player *entity.Player) bool {
	if player.Supported {
		return true
	}
	return s.field.HasFloor() && player.Bottom() >= s.field.FloorY-groundEpsilon
}

func (s *PlayerSystem) clampFloor(player *entity.Player) {
	if !s.field.HasFloor() || player.Bottom() < s.field.FloorY {
		return
	}
	if player.Bottom() > s.field.FloorY || player.VY > 0 {
		player.Y = s.field.FloorY - player.Height
		player.Land()
	}
}

func (s *PlayerSystem) clampBounds(player *entity.Player) {
	player.X = geom.Clamp(player.X, 0, s.field.Width-player.Width)

	if player.Y < 0 {
		player.Y = 0
		if player.VY < 0 {
			player.VY = 0
		}
	}
	if maxY := s.field.Height - player.Height; player.Y > maxY {
		player.Y = maxY
		player.Land()
	}
}
