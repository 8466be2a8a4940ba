package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/girders/internal/domain/entity"
	"github.com/younwookim/girders/internal/domain/geom"
	"github.com/younwookim/girders/internal/infrastructure/config"
)

const defaultLayoutAttempts = 5

var (
	ErrNoPlatforms       = errors.New("stage has no platforms")
	ErrInvalidPlatform   = errors.New("platform width must be positive")
	ErrUnknownPlatform   = errors.New("ladder references an unknown platform")
	ErrPlatformsDisjoint = errors.New("platforms do not overlap horizontally")
	ErrLadderTooShort    = errors.New("ladder shorter than the minimum height")
	ErrIncompleteLadder  = errors.New("ladder needs x and height, or upper and lower")
)

// Placement records how a platform ended up where it is
type Placement struct {
	Attempts int  // candidates tried, including the accepted one
	Fallback bool // every candidate crossed an earlier platform
}

// PlacePlatforms builds the platforms in order. A candidate that crosses an
// already placed platform is shifted down by RetryStep and tried again; once
// MaxAttempts are used up it is placed at FallbackOffset regardless.
func PlacePlatforms(params []config.PlatformConfig, layout config.LayoutConfig) ([]*entity.Platform, []Placement, error) {
	if len(params) == 0 {
		return nil, nil, ErrNoPlatforms
	}

	maxAttempts := layout.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultLayoutAttempts
	}

	platforms := make([]*entity.Platform, 0, len(params))
	placements := make([]Placement, 0, len(params))

	for i, p := range params {
		if p.Width <= 0 {
			return nil, nil, fmt.Errorf("platform %d: %w", i, ErrInvalidPlatform)
		}

		placed := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			offset := float64(attempt) * layout.RetryStep
			candidate := entity.NewPlatform(p.X, p.LeftY+offset, p.RightY+offset, p.Width)
			if candidate.IsValidPlacement(platforms) {
				platforms = append(platforms, candidate)
				placements = append(placements, Placement{Attempts: attempt + 1})
				placed = true
				break
			}
		}

		if !placed {
			log.Printf("layout: platform %d crosses others after %d attempts, using fallback offset %.0f",
				i, maxAttempts, layout.FallbackOffset)
			platforms = append(platforms, entity.NewPlatform(
				p.X, p.LeftY+layout.FallbackOffset, p.RightY+layout.FallbackOffset, p.Width))
			placements = append(placements, Placement{Attempts: maxAttempts, Fallback: true})
		}
	}

	return platforms, placements, nil
}

// BuildLadders creates the stage ladders. Ladders that cannot be built are
// logged and skipped.
func BuildLadders(cfgs []config.LadderConfig, platforms []*entity.Platform, minHeight float64) []*entity.Ladder {
	ladders := make([]*entity.Ladder, 0, len(cfgs))
	for i, c := range cfgs {
		ladder, err := buildLadder(c, platforms, minHeight)
		if err != nil {
			log.Printf("layout: skipping ladder %d: %v", i, err)
			continue
		}
		ladders = append(ladders, ladder)
	}
	return ladders
}

func buildLadder(c config.LadderConfig, platforms []*entity.Platform, minHeight float64) (*entity.Ladder, error) {
	if !c.IsConnection() {
		if c.X == nil || c.Height <= 0 {
			return nil, ErrIncompleteLadder
		}
		return entity.NewLadder(*c.X, c.Y, c.Height), nil
	}

	if c.Upper == nil || c.Lower == nil {
		return nil, ErrIncompleteLadder
	}
	upper, err := platformAt(platforms, *c.Upper)
	if err != nil {
		return nil, err
	}
	lower, err := platformAt(platforms, *c.Lower)
	if err != nil {
		return nil, err
	}
	return ConnectPlatforms(upper, lower, c.X, minHeight)
}

func platformAt(platforms []*entity.Platform, idx int) (*entity.Platform, error) {
	if idx < 0 || idx >= len(platforms) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlatform, idx)
	}
	return platforms[idx], nil
}

// ConnectPlatforms places a ladder from the upper platform's surface down to
// the lower platform's surface. x is the ladder's left edge; when nil the
// ladder is centered between the upper platform's right end and the lower
// platform's left end. The ladder is kept inside both platforms.
func ConnectPlatforms(upper, lower *entity.Platform, x *float64, minHeight float64) (*entity.Ladder, error) {
	const half = entity.LadderWidth / 2.0

	lo := max(upper.X, lower.X) + half
	hi := min(upper.EndX(), lower.EndX()) - half
	if hi < lo {
		return nil, ErrPlatformsDisjoint
	}

	cx := (upper.End().X + lower.Start().X) / 2
	if x != nil {
		cx = *x + half
	}
	cx = geom.Clamp(cx, lo, hi)

	top := upper.SurfaceYAt(cx)
	height := lower.SurfaceYAt(cx) - top
	if height < minHeight || height <= 0 {
		return nil, fmt.Errorf("%w: %.1f < %.1f", ErrLadderTooShort, height, minHeight)
	}

	return entity.NewLadder(cx-half, top, height), nil
}

// PlayerStats converts the player config into entity stats
func PlayerStats(cfg config.PlayerConfig) entity.PlayerStats {
	return entity.PlayerStats{
		Width:      cfg.Size.Width,
		Height:     cfg.Size.Height,
		Speed:      cfg.Stats.Speed,
		JumpForce:  cfg.Stats.JumpForce,
		Gravity:    cfg.Stats.Gravity,
		ClimbSpeed: cfg.Stats.ClimbSpeed,
	}
}

// BarrelStats converts the barrel config into entity stats
func BarrelStats(cfg config.BarrelConfig) entity.BarrelStats {
	return entity.BarrelStats{
		Width:         cfg.Size.Width,
		Height:        cfg.Size.Height,
		Speed:         cfg.Stats.Speed,
		Gravity:       cfg.Stats.Gravity,
		RotationSpeed: cfg.Stats.RotationSpeed,
	}
}

// AntagonistStats converts the antagonist config into entity stats
func AntagonistStats(cfg config.AntagonistConfig) entity.AntagonistStats {
	return entity.AntagonistStats{
		Width:          cfg.Size.Width,
		Height:         cfg.Size.Height,
		Interval:       cfg.Throw.IntervalMs,
		IntervalMin:    cfg.Throw.IntervalMinMs,
		IntervalMax:    cfg.Throw.IntervalMaxMs,
		AnimationTicks: cfg.AnimationTicks,
	}
}

// Playfield returns the simulation bounds of a stage
func Playfield(stage *config.StageConfig) entity.Playfield {
	return entity.Playfield{
		Width:  float64(stage.Size.Width),
		Height: float64(stage.Size.Height),
		FloorY: float64(stage.Size.FloorY),
	}
}

// SpawnPlayer creates the player at the stage spawn point
func SpawnPlayer(cfg *config.EntitiesConfig, stage *config.StageConfig) *entity.Player {
	return entity.NewPlayer(
		float64(stage.PlayerSpawn.X),
		float64(stage.PlayerSpawn.Y),
		PlayerStats(cfg.Player),
	)
}
