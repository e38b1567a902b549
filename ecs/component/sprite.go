package component

// Sprite names a sheet in the render registry. The source rectangle comes
// from the entity's animation each frame.
type Sprite struct {
	Sheet string
	// Scale is applied to the body width to size the drawn frame.
	Scale float64
}

var SpriteComponent = NewComponent[Sprite]()
