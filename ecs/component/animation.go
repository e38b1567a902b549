package component

import "github.com/milk9111/platformer/anim"

type Animation struct {
	Machine *anim.Machine
}

var AnimationComponent = NewComponent[Animation]()
