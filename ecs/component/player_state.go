package component

// PlayerState is written by the systems each frame.
type PlayerState struct {
	// Grounded is the post-step ground contact result.
	Grounded bool
	// Jumped is set when a jump impulse was applied this frame.
	Jumped bool
}

var PlayerStateComponent = NewComponent[PlayerState]()
