// Package scene defines the screens the game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The loop calls Update once per tick and
// Draw once per frame; returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Update advances the scene by dt milliseconds (1000/60 at 60 TPS).
	// A non-nil error stops the game.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced, before the next OnEnter.
	OnExit()
}
