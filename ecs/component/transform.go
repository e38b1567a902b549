package component

// Transform mirrors the body pose in physics space (y up).
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
