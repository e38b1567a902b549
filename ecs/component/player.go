package component

import "github.com/milk9111/platformer/controller"

// Player carries the tuning used to drive the controlled body. Replacing it
// between frames changes behaviour from the next frame on.
type Player struct {
	Move   controller.MoveTuning
	Ground controller.GroundTuning
}

var PlayerComponent = NewComponent[Player]()
