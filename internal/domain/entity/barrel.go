package entity

import "github.com/younwookim/girders/internal/domain/geom"

// BarrelStats holds the physical constants of a barrel
type BarrelStats struct {
	Width         float64
	Height        float64
	Speed         float64 // horizontal units per tick while rolling
	Gravity       float64 // vertical velocity gained per tick while falling
	RotationSpeed float64 // radians per tick, cosmetic
}

// Barrel is a rolling projectile thrown by the antagonist.
// While Support is set the barrel rests on that platform and rolls along it;
// otherwise it is falling.
type Barrel struct {
	ID            EntityID
	X, Y          float64 // top-left corner
	Width, Height float64
	VY            float64
	Speed         float64
	Direction     int // 1 right, -1 left
	Gravity       float64
	Rotation      float64
	RotationSpeed float64

	Support   *Platform // not owned
	EdgeExits int
	Active    bool
}

// NewBarrel creates a falling barrel with its top-left corner at (x, y)
func NewBarrel(id EntityID, x, y float64, stats BarrelStats, direction int) *Barrel {
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}
	return &Barrel{
		ID:            id,
		X:             x,
		Y:             y,
		Width:         stats.Width,
		Height:        stats.Height,
		Speed:         stats.Speed,
		Direction:     direction,
		Gravity:       stats.Gravity,
		RotationSpeed: stats.RotationSpeed,
		Active:        true,
	}
}

// Bounds returns the barrel's bounding box
func (b *Barrel) Bounds() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// CenterX returns the horizontal center
func (b *Barrel) CenterX() float64 {
	return b.X + b.Width/2
}

// Bottom returns the y coordinate of the lower edge
func (b *Barrel) Bottom() float64 {
	return b.Y + b.Height
}

// IsResting returns true while a platform supports the barrel
func (b *Barrel) IsResting() bool {
	return b.Support != nil
}

// Fall integrates one tick of free fall (explicit Euler)
func (b *Barrel) Fall() {
	b.VY += b.Gravity
	b.Y += b.VY
}

// RestOn snaps the barrel onto the platform surface at its center and turns
// it downhill. A flat platform keeps the current direction.
func (b *Barrel) RestOn(p *Platform) {
	b.Y = p.SurfaceYAt(b.CenterX()) - b.Height
	b.VY = 0
	b.Support = p
	if dir := p.DownhillDir(); dir != 0 {
		b.Direction = dir
	}
}

// Roll advances the barrel along its supporting platform. It returns false
// when the barrel's center has left the platform, in which case the barrel
// is released into free fall.
func (b *Barrel) Roll() bool {
	if b.Support == nil {
		return false
	}

	b.X += b.Speed * float64(b.Direction)

	cx := b.CenterX()
	if !b.Support.Spans(cx) {
		b.Support = nil
		b.EdgeExits++
		return false
	}

	b.Y = b.Support.SurfaceYAt(cx) - b.Height
	return true
}

// Reverse flips the rolling direction
func (b *Barrel) Reverse() {
	b.Direction = -b.Direction
}

// Spin advances the cosmetic rotation
func (b *Barrel) Spin() {
	b.Rotation += b.RotationSpeed
}

// Deactivate marks the barrel for removal
func (b *Barrel) Deactivate() {
	b.Active = false
	b.Support = nil
}
