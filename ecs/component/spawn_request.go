package component

// SpawnRequest asks the spawn system for a box centred at X, Y in physics
// space. The request entity is destroyed once handled.
type SpawnRequest struct {
	X float64
	Y float64
}

var SpawnRequestComponent = NewComponent[SpawnRequest]()
