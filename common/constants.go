package common

// World dimensions in physics units. The physics world is y-up; screen
// conversion happens only at draw time.
const (
	WindowWidth  = 800
	WindowHeight = 600

	GroundHeight = 50.0
)

// ToScreen converts a y-up physics point to y-down screen coordinates.
func ToScreen(x, y float64) (float64, float64) {
	return x, WindowHeight - y
}

// FromScreen converts a screen point into physics coordinates.
func FromScreen(x, y float64) (float64, float64) {
	return x, WindowHeight - y
}
