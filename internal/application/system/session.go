package system

import (
	"math/rand"

	"github.com/younwookim/girders/internal/domain/entity"
	"github.com/younwookim/girders/internal/infrastructure/config"
)

// Session is one run of a stage: the level, the player and the tick driver.
// The same seed and input sequence always produce the same run.
type Session struct {
	Level  *Level
	Player *entity.Player

	Seed   int64
	Frame  int
	Spawns int
	Hits   int

	players *PlayerSystem
	dt      float64
}

// NewSession builds the stage and spawns the player
func NewSession(cfg *config.GameConfig, stage *config.StageConfig, seed int64) (*Session, error) {
	level, err := NewLevel(cfg, stage, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	s := &Session{
		Level:   level,
		Player:  SpawnPlayer(cfg.Entities, stage),
		Seed:    seed,
		players: NewPlayerSystem(level.Field),
		dt:      cfg.Physics.Display.TickMillis(),
	}
	level.OnSpawn = func(*entity.Barrel) { s.Spawns++ }
	level.OnPlayerHit = func(*entity.Barrel) { s.Hits++ }
	return s, nil
}

// Step advances one fixed tick: level first, then the player
func (s *Session) Step(input InputState) {
	s.Level.Update(s.Player, s.dt)
	s.players.Update(s.Player, input, s.Level.Ladders)
	s.Frame++
}

// DT returns the tick length in milliseconds
func (s *Session) DT() float64 {
	return s.dt
}

// Reset restarts the run in place: barrels are cleared, the antagonist and
// player return to their starting state and the level's rng is reseeded.
func (s *Session) Reset(seed int64) {
	s.Level.rng.Seed(seed)
	s.Level.Reset()

	s.Player.Reset()
	s.Player.Deaths = 0
	s.Player.JumpHeld = false

	s.Seed = seed
	s.Frame = 0
	s.Spawns = 0
	s.Hits = 0
}
