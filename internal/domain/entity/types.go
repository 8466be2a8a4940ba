package entity

import "github.com/younwookim/girders/internal/domain/geom"

// EntityID is a unique identifier for a spawned entity
type EntityID uint32

// Playfield is the bounded simulation area matching the drawing surface
type Playfield struct {
	Width  float64
	Height float64
	// FloorY is the ground line the player stands on when no platform is
	// beneath. Zero or negative disables the floor.
	FloorY float64
}

// HasFloor reports whether the playfield has a ground line
func (f Playfield) HasFloor() bool {
	return f.FloorY > 0
}

// Bounds returns the playfield as a rectangle
func (f Playfield) Bounds() geom.Rect {
	return geom.Rect{W: f.Width, H: f.Height}
}

// Tolerance holds the band thresholds used to approximate exact surface
// contact under discrete time stepping.
type Tolerance struct {
	Band  float64 // how far past a surface a body may be and still snap onto it
	Stick float64 // how far above a surface a resting body still counts as supported
}

// DefaultTolerance returns the tolerances used by the classic stage
func DefaultTolerance() Tolerance {
	return Tolerance{Band: 20, Stick: 2}
}
