// Package geom provides the small set of 2D helpers the simulation needs:
// segment intersection, rotated-frame transforms and axis-aligned rects.
package geom

import "math"

// Vec is a 2D point or vector in playfield units (y grows downward).
type Vec struct {
	X, Y float64
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// SegmentsIntersect reports whether segment p1-p2 intersects segment p3-p4.
// Parallel (and collinear) segments never intersect.
func SegmentsIntersect(p1, p2, p3, p4 Vec) bool {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if denom == 0 {
		return false
	}

	ua := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denom
	ub := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / denom

	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}

// RotateIntoFrame expresses p in the local frame of a rectangle anchored at
// origin and rotated by angle radians.
func RotateIntoFrame(p, origin Vec, angle float64) Vec {
	d := p.Sub(origin)
	sin, cos := math.Sincos(-angle)
	return Vec{
		X: d.X*cos - d.Y*sin,
		Y: d.X*sin + d.Y*cos,
	}
}

// Lerp interpolates between a and b; t=0 yields a, t=1 yields b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Overlaps reports strict overlap; rectangles that only touch do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

// Expand grows the rectangle by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}
