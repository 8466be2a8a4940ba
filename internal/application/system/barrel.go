package system

import (
	"github.com/younwookim/girders/internal/domain/entity"
)

// BarrelSystem advances barrels one tick at a time
type BarrelSystem struct {
	field          entity.Playfield
	tol            entity.Tolerance
	maxEdgeExits   int
	bounceOffWalls bool
}

// NewBarrelSystem creates a barrel system. maxEdgeExits <= 0 disables the
// edge-exit cap.
func NewBarrelSystem(field entity.Playfield, tol entity.Tolerance, maxEdgeExits int, bounceOffWalls bool) *BarrelSystem {
	return &BarrelSystem{
		field:          field,
		tol:            tol,
		maxEdgeExits:   maxEdgeExits,
		bounceOffWalls: bounceOffWalls,
	}
}

// Update steps every barrel and drops the expired ones in place. The
// returned slice shares the backing array of barrels. onRemove is called for
// each dropped barrel.
func (s *BarrelSystem) Update(barrels []*entity.Barrel, platforms []*entity.Platform, onRemove func(*entity.Barrel)) []*entity.Barrel {
	n := 0
	for _, b := range barrels {
		s.Step(b, platforms)
		if s.Expired(b) {
			b.Deactivate()
			if onRemove != nil {
				onRemove(b)
			}
			continue
		}
		barrels[n] = b
		n++
	}

	// Release dropped pointers held past the new length
	for i := n; i < len(barrels); i++ {
		barrels[i] = nil
	}
	return barrels[:n]
}

// Step advances a single barrel: roll while supported, otherwise fall and
// look for a platform to land on.
func (s *BarrelSystem) Step(b *entity.Barrel, platforms []*entity.Platform) {
	b.Spin()

	if b.IsResting() {
		if b.Roll() {
			s.bounce(b)
			return
		}
		// Rolled off the edge, fall this tick
	}

	b.Fall()
	s.bounce(b)
	s.land(b, platforms)
}

// land rests a falling barrel on the highest platform whose surface it
// crossed this tick.
func (s *BarrelSystem) land(b *entity.Barrel, platforms []*entity.Platform) bool {
	if b.VY <= 0 {
		return false
	}

	cx := b.CenterX()
	bottom := b.Bottom()

	var best *entity.Platform
	bestY := 0.0
	for _, p := range platforms {
		if !p.Spans(cx) {
			continue
		}
		surfaceY := p.SurfaceYAt(cx)
		if bottom < surfaceY || bottom >= surfaceY+s.tol.Band {
			continue
		}
		if best == nil || surfaceY < bestY {
			best = p
			bestY = surfaceY
		}
	}

	if best == nil {
		return false
	}
	b.RestOn(best)
	return true
}

// bounce keeps the barrel inside the side walls and reverses it
func (s *BarrelSystem) bounce(b *entity.Barrel) {
	if !s.bounceOffWalls {
		return
	}

	switch {
	case b.X < 0:
		b.X = 0
		if b.Direction < 0 {
			b.Reverse()
		}
	case b.X+b.Width > s.field.Width:
		b.X = s.field.Width - b.Width
		if b.Direction > 0 {
			b.Reverse()
		}
	default:
		return
	}

	if b.Support == nil {
		return
	}
	if cx := b.CenterX(); b.Support.Spans(cx) {
		b.Y = b.Support.SurfaceYAt(cx) - b.Height
	} else {
		b.Support = nil
	}
}

// Expired reports whether the barrel should be removed
func (s *BarrelSystem) Expired(b *entity.Barrel) bool {
	if !b.Active {
		return true
	}
	if b.Y > s.field.Height+b.Height {
		return true
	}
	return s.maxEdgeExits > 0 && b.EdgeExits >= s.maxEdgeExits
}
