package entity

import "github.com/younwookim/girders/internal/domain/geom"

const (
	// LadderWidth is the fixed width of every ladder
	LadderWidth = 16
	// LadderRungSpacing is the drawn distance between rungs
	LadderRungSpacing = 12
	// LadderTolerance is the vertical slack when grabbing a ladder
	LadderTolerance = 10
)

// Ladder is a vertical climb zone. It carries no physics of its own.
type Ladder struct {
	X, Y        float64 // top-left corner
	Width       float64
	Height      float64
	RungSpacing float64
}

// NewLadder creates a ladder with the standard width and rung spacing
func NewLadder(x, y, height float64) *Ladder {
	return &Ladder{
		X:           x,
		Y:           y,
		Width:       LadderWidth,
		Height:      height,
		RungSpacing: LadderRungSpacing,
	}
}

// Bottom returns the y coordinate of the ladder's foot
func (l *Ladder) Bottom() float64 {
	return l.Y + l.Height
}

// Bounds returns the ladder rectangle
func (l *Ladder) Bounds() geom.Rect {
	return geom.Rect{X: l.X, Y: l.Y, W: l.Width, H: l.Height}
}

// CenteredX returns the x a body of the given width must have to be
// centered on the ladder.
func (l *Ladder) CenteredX(width float64) float64 {
	return l.X + (l.Width-width)/2
}

// ContainsForClimb reports whether a body can grab the ladder: it must
// overlap the ladder horizontally, be within LadderTolerance vertically and
// the player must be pressing up or down.
func (l *Ladder) ContainsForClimb(body geom.Rect, up, down bool) bool {
	if !up && !down {
		return false
	}
	if body.Right() <= l.X || body.X >= l.X+l.Width {
		return false
	}
	return body.Bottom() > l.Y-LadderTolerance &&
		body.Y < l.Bottom()+LadderTolerance
}

// Rungs returns the y coordinate of every rung, top to bottom
func (l *Ladder) Rungs() []float64 {
	if l.RungSpacing <= 0 {
		return nil
	}
	rungs := make([]float64, 0, int(l.Height/l.RungSpacing)+1)
	for y := 0.0; y < l.Height; y += l.RungSpacing {
		rungs = append(rungs, l.Y+y)
	}
	return rungs
}
