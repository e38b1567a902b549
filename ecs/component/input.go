package component

import "github.com/milk9111/platformer/controller"

// Input stores the intent snapshot captured at the start of the frame.
type Input struct {
	Intent controller.Intent
}

var InputComponent = NewComponent[Input]()
