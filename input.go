package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/controller"
)

const stickDeadZone = 0.3

// Input polls the keyboard, mouse and first gamepad. It is both the
// game's intent source and its spawn source.
type Input struct {
	spawns []cp.Vector
}

func NewInput() *Input {
	return &Input{}
}

// Intent reports the held keys: A/Left, D/Right and W/Up/Space.
func (i *Input) Intent() controller.Intent {
	var in controller.Intent
	in.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	in.Jump = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeySpace)

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		in.Left = in.Left || x < -stickDeadZone
		in.Right = in.Right || x > stickDeadZone
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := common.FromScreen(float64(mx), float64(my))
		i.spawns = append(i.spawns, cp.Vector{X: x, Y: y})
	}
	return in
}

// Spawns returns the clicks collected since the last call.
func (i *Input) Spawns() []cp.Vector {
	out := i.spawns
	i.spawns = nil
	return out
}
