// Package scene defines the Scene interface the game loop drives.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one game screen. The loop delegates Update and Draw to the
// current scene; a scene transitions by returning its successor from
// Update and terminates the game by returning an error.
type Scene interface {
	// Update advances the scene by one fixed step of dt seconds.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is left; release subscriptions and
	// spawned actors here.
	OnExit()
}
