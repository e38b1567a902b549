package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type BoxTag struct{}

var BoxTagComponent = NewComponent[BoxTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()
