package entity

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/girders/internal/domain/geom"
)

// AntagonistFrames is the number of idle animation frames
const AntagonistFrames = 2

// AntagonistStats configures the barrel thrower
type AntagonistStats struct {
	Width  float64
	Height float64

	// Interval is the first throw delay in milliseconds. When IntervalMax is
	// greater than IntervalMin, every later delay is drawn uniformly from
	// [IntervalMin, IntervalMax]; otherwise Interval is reused. A zero
	// Interval with a range draws the first delay from the range too.
	Interval    float64
	IntervalMin float64
	IntervalMax float64

	AnimationTicks float64 // ticks for one full idle cycle
}

// Antagonist sits at the top of the level and throws barrels on a timer
type Antagonist struct {
	X, Y          float64
	Width, Height float64

	Timer       float64 // ms accumulated since the last throw
	Interval    float64 // ms until the next throw
	IntervalMin float64
	IntervalMax float64

	Throws int

	initial float64
	anim    *gween.Tween
	frame   float64
}

// NewAntagonist creates an antagonist with its top-left corner at (x, y)
func NewAntagonist(x, y float64, stats AntagonistStats) *Antagonist {
	ticks := stats.AnimationTicks
	if ticks <= 0 {
		ticks = 20
	}
	return &Antagonist{
		X:           x,
		Y:           y,
		Width:       stats.Width,
		Height:      stats.Height,
		Interval:    stats.Interval,
		IntervalMin: stats.IntervalMin,
		IntervalMax: stats.IntervalMax,
		initial:     stats.Interval,
		anim:        gween.New(0, AntagonistFrames, float32(ticks), ease.Linear),
	}
}

// Reset restores the first throw delay and restarts the timer and animation
func (a *Antagonist) Reset() {
	a.Timer = 0
	a.Interval = a.initial
	a.Throws = 0
	a.anim.Reset()
	a.frame = 0
}

// Jittered reports whether the throw interval is redrawn after each throw
func (a *Antagonist) Jittered() bool {
	return a.IntervalMax > a.IntervalMin
}

// Update advances the throw timer by dt milliseconds and the idle animation
// by one tick. It returns true when a barrel must be thrown this tick.
func (a *Antagonist) Update(dt float64, rng *rand.Rand) bool {
	a.animate()
	if a.Interval <= 0 {
		if !a.Jittered() || rng == nil {
			return false
		}
		a.Interval = a.draw(rng)
	}

	a.Timer += dt
	if a.Timer < a.Interval {
		return false
	}

	a.Timer = 0
	a.Throws++
	if a.Jittered() && rng != nil {
		a.Interval = a.draw(rng)
	}
	return true
}

func (a *Antagonist) draw(rng *rand.Rand) float64 {
	return a.IntervalMin + rng.Float64()*(a.IntervalMax-a.IntervalMin)
}

func (a *Antagonist) animate() {
	frame, done := a.anim.Update(1)
	if done {
		a.anim.Reset()
		frame = 0
	}
	a.frame = float64(frame)
}

// AnimationFrame returns the current idle frame in [0, AntagonistFrames)
func (a *Antagonist) AnimationFrame() int {
	f := int(a.frame)
	if f >= AntagonistFrames {
		return AntagonistFrames - 1
	}
	return f
}

// SpawnPoint returns where a thrown barrel's top-left corner starts
func (a *Antagonist) SpawnPoint() geom.Vec {
	return geom.Vec{X: a.X + a.Width/2, Y: a.Y + a.Height}
}

// Bounds returns the antagonist's body rectangle
func (a *Antagonist) Bounds() geom.Rect {
	return geom.Rect{X: a.X, Y: a.Y, W: a.Width, H: a.Height}
}
