package entity

import (
	"math"

	"github.com/younwookim/girders/internal/domain/geom"
)

const (
	// PlatformThickness is the standard girder thickness
	PlatformThickness = 8
	// PlatformRivetSpacing is the distance between drawn rivets
	PlatformRivetSpacing = 16

	platformBoundsBuffer = 5
)

// Platform is an inclined girder. (X, LeftY) is its left endpoint and
// (X+Width, RightY) its right endpoint; the top surface runs between them.
type Platform struct {
	X         float64
	LeftY     float64
	RightY    float64
	Width     float64
	Thickness float64
	Angle     float64 // atan2(RightY-LeftY, Width)
}

// NewPlatform creates a platform with the standard thickness
func NewPlatform(x, leftY, rightY, width float64) *Platform {
	return &Platform{
		X:         x,
		LeftY:     leftY,
		RightY:    rightY,
		Width:     width,
		Thickness: PlatformThickness,
		Angle:     math.Atan2(rightY-leftY, width),
	}
}

// EndX returns the x coordinate of the right endpoint
func (p *Platform) EndX() float64 {
	return p.X + p.Width
}

// Start returns the left endpoint of the surface
func (p *Platform) Start() geom.Vec {
	return geom.Vec{X: p.X, Y: p.LeftY}
}

// End returns the right endpoint of the surface
func (p *Platform) End() geom.Vec {
	return geom.Vec{X: p.EndX(), Y: p.RightY}
}

// Bounds returns the axis-aligned bounding box padded by a small buffer.
func (p *Platform) Bounds() geom.Rect {
	top := math.Min(p.LeftY, p.RightY) - platformBoundsBuffer
	bottom := math.Max(p.LeftY, p.RightY) + platformBoundsBuffer
	left := math.Min(p.X, p.EndX()) - platformBoundsBuffer
	right := math.Max(p.X, p.EndX()) + platformBoundsBuffer
	return geom.Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Spans reports whether x lies within the platform's horizontal extent
func (p *Platform) Spans(x float64) bool {
	return x >= p.X && x <= p.EndX()
}

// SurfaceYAt returns the surface height at x. Callers must check Spans
// first; outside the extent the result is NaN.
func (p *Platform) SurfaceYAt(x float64) float64 {
	if !p.Spans(x) || p.Width <= 0 {
		return math.NaN()
	}
	return geom.Lerp(p.LeftY, p.RightY, (x-p.X)/p.Width)
}

// DownhillDir returns +1 when the surface descends to the right, -1 when it
// descends to the left and 0 when flat. Screen y grows downward.
func (p *Platform) DownhillDir() int {
	switch {
	case p.RightY > p.LeftY:
		return 1
	case p.RightY < p.LeftY:
		return -1
	default:
		return 0
	}
}

// Length returns the length of the surface segment
func (p *Platform) Length() float64 {
	return math.Hypot(p.Width, p.RightY-p.LeftY)
}

// ContainsPoint reports whether pt lies inside the girder's rotated rectangle.
func (p *Platform) ContainsPoint(pt geom.Vec) bool {
	local := geom.RotateIntoFrame(pt, p.Start(), p.Angle)
	return local.X >= 0 && local.X <= p.Length() &&
		local.Y >= 0 && local.Y <= p.Thickness
}

// Intersects checks whether two platform surfaces cross
func (p *Platform) Intersects(other *Platform) bool {
	if !p.Bounds().Overlaps(other.Bounds()) {
		return false
	}
	return geom.SegmentsIntersect(p.Start(), p.End(), other.Start(), other.End())
}

// IsValidPlacement reports whether the platform crosses none of the already
// placed platforms.
func (p *Platform) IsValidPlacement(existing []*Platform) bool {
	for _, other := range existing {
		if p.Intersects(other) {
			return false
		}
	}
	return true
}

// CollidesWithPlayer resolves the player against the surface band.
// Landing snaps the player onto the surface and ends a jump; a head bump
// pushes the player below the girder. Only the surface at the player's
// center is sampled, so very fast bodies can tunnel through.
func (p *Platform) CollidesWithPlayer(player *Player, tol Tolerance) bool {
	if player.IsClimbing() {
		return false
	}

	body := player.Bounds()
	if body.Right() < p.X || body.X > p.EndX() {
		return false
	}

	surfaceY := p.SurfaceYAt(geom.Clamp(body.CenterX(), p.X, p.EndX()))

	// Falling onto (or resting on) the top
	if player.VY >= 0 &&
		body.Bottom() >= surfaceY-tol.Stick &&
		body.Bottom() < surfaceY+tol.Band {
		player.Y = surfaceY - player.Height
		player.Land()
		return true
	}

	// Rising into the underside
	underside := surfaceY + p.Thickness
	if player.VY < 0 &&
		body.Y < underside &&
		body.Y > surfaceY-tol.Band &&
		body.Bottom() > underside {
		player.Y = underside
		player.VY = 0
		return true
	}

	return false
}
