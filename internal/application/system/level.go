package system

import (
	"math/rand"

	"github.com/younwookim/girders/internal/domain/entity"
	"github.com/younwookim/girders/internal/domain/geom"
	"github.com/younwookim/girders/internal/infrastructure/config"
)

// Level owns the platforms, ladders, barrels and antagonist of one stage and
// orchestrates them each tick.
type Level struct {
	Field      entity.Playfield
	Tolerance  entity.Tolerance
	Platforms  []*entity.Platform
	Placements []Placement
	Ladders    []*entity.Ladder
	Barrels    []*entity.Barrel
	Antagonist *entity.Antagonist

	barrelStats entity.BarrelStats
	throwDir    int
	barrels     *BarrelSystem
	contacts    *contactSpace
	rng         *rand.Rand
	nextID      entity.EntityID

	// Event callbacks
	OnSpawn     func(b *entity.Barrel)
	OnPlayerHit func(b *entity.Barrel)
}

// NewLevel builds the stage layout and its actors
func NewLevel(cfg *config.GameConfig, stage *config.StageConfig, rng *rand.Rand) (*Level, error) {
	platforms, placements, err := PlacePlatforms(stage.Platforms, cfg.Physics.Layout)
	if err != nil {
		return nil, err
	}

	collision := cfg.Physics.Collision
	tol := entity.DefaultTolerance()
	if collision.Band > 0 {
		tol.Band = collision.Band
	}
	if collision.StickTolerance > 0 {
		tol.Stick = collision.StickTolerance
	}

	field := Playfield(stage)
	barrelCfg := cfg.Entities.Barrel

	throwDir := cfg.Entities.Antagonist.Throw.Direction
	if throwDir == 0 {
		throwDir = 1
	}

	return &Level{
		Field:      field,
		Tolerance:  tol,
		Platforms:  platforms,
		Placements: placements,
		Ladders:    BuildLadders(stage.Ladders, platforms, collision.MinLadderHeight),
		Barrels:    make([]*entity.Barrel, 0, 16),
		Antagonist: entity.NewAntagonist(
			float64(stage.Antagonist.X),
			float64(stage.Antagonist.Y),
			AntagonistStats(cfg.Entities.Antagonist),
		),
		barrelStats: BarrelStats(barrelCfg),
		throwDir:    throwDir,
		barrels:     NewBarrelSystem(field, tol, barrelCfg.MaxEdgeExits, barrelCfg.BounceOffWalls),
		contacts:    newContactSpace(field),
		rng:         rng,
	}, nil
}

// Update advances the level by one tick of dt milliseconds. The player is
// reset at most once per tick on barrel contact; afterwards platforms are
// resolved against the player and gravity is applied when nothing holds it.
func (l *Level) Update(player *entity.Player, dt float64) {
	if l.Antagonist.Update(dt, l.rng) {
		l.SpawnBarrel()
	}

	l.Barrels = l.barrels.Update(l.Barrels, l.Platforms, l.contacts.untrack)
	l.contacts.sync(l.Barrels)

	if b := l.contacts.hit(player); b != nil {
		player.Die()
		if l.OnPlayerHit != nil {
			l.OnPlayerHit(b)
		}
	}

	player.Supported = false
	for _, p := range l.Platforms {
		rising := player.VY < 0
		if p.CollidesWithPlayer(player, l.Tolerance) {
			player.Supported = !rising
			break
		}
	}

	if !player.Supported && !player.IsClimbing() {
		player.VY += player.Gravity
	}
}

// SpawnBarrel throws a barrel from the antagonist's spawn point
func (l *Level) SpawnBarrel() *entity.Barrel {
	l.nextID++
	sp := l.Antagonist.SpawnPoint()
	b := entity.NewBarrel(l.nextID, sp.X, sp.Y, l.barrelStats, l.throwDir)

	l.Barrels = append(l.Barrels, b)
	l.contacts.track(b)

	if l.OnSpawn != nil {
		l.OnSpawn(b)
	}
	return b
}

// Reset removes every barrel and restarts the antagonist and barrel ids.
// The layout is kept.
func (l *Level) Reset() {
	for i := range l.Barrels {
		l.Barrels[i].Deactivate()
		l.Barrels[i] = nil
	}
	l.Barrels = l.Barrels[:0]
	l.contacts.clear()
	l.Antagonist.Reset()
	l.nextID = 0
}

// PlatformAt returns the index of the first platform containing (x, y), or -1
// when no platform does or the point is off the playfield
func (l *Level) PlatformAt(x, y float64) int {
	pt := geom.Vec{X: x, Y: y}
	if !l.Field.Bounds().Contains(pt) {
		return -1
	}
	for i, p := range l.Platforms {
		if p.ContainsPoint(pt) {
			return i
		}
	}
	return -1
}
