// Package game runs the active scene inside ebiten's fixed-tick loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/girders/internal/application/scene"
)

// DefaultDT is the tick length in milliseconds at 60 TPS
const DefaultDT = 1000.0 / 60.0

// Game implements ebiten.Game. Each ebiten tick updates the current scene
// once with a constant dt; a scene returned from Update replaces it.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New wraps the first scene and enters it
func New(first scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: first,
		screenW: screenW,
		screenH: screenH,
		dt:      DefaultDT,
	}
	g.current.OnEnter()
	return g
}

// Update runs one tick of the current scene and switches scenes on request
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next != nil {
		g.switchTo(next)
	}
	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
}

// Draw renders the current scene
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the playfield size regardless of the window size
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the tick length in milliseconds passed to the scene.
// Use it when the TPS differs from 60.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
