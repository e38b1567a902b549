// Command clipview previews the player's animation clips from the player
// prefab. Tab cycles the pose, F flips the facing.
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/diag"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

const (
	viewSize = 512
	tps      = 60
)

var poses = []anim.State{anim.Idle, anim.Walk, anim.Jump}

type viewer struct {
	sheet   *ebiten.Image
	machine *anim.Machine
	pose    int
	flip    bool
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.pose = (v.pose + 1) % len(poses)
		v.machine.SetState(poses[v.pose])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.flip = !v.flip
	}
	v.machine.Advance(1.0 / tps)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	snap := v.machine.Snapshot()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s frame %d playing %v", snap.State, snap.Frame, snap.Playing), 8, 8)

	frame, ok := v.machine.CurrentFrame()
	if !ok || frame.Empty() {
		return
	}
	sub, ok := v.sheet.SubImage(frame).(*ebiten.Image)
	if !ok {
		return
	}
	const scale = 4
	fw, fh := float64(frame.Dx())*scale, float64(frame.Dy())*scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	if v.flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(fw, 0)
	}
	op.GeoM.Translate((viewSize-fw)/2, (viewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(sub, op)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	flags, _, err := config.Parse("clipview", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	d, err := diag.New(diag.FromConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer d.Close()
	logger := d.Logger()

	prefabs.SetDir(cfg.Prefabs.Dir)
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		logger.Fatal("load player prefab", zap.Error(err))
	}
	clips, err := spec.ClipSet()
	if err != nil {
		logger.Fatal("build clips", zap.Error(err))
	}
	sheet, err := render.NewSheets(cfg.Prefabs.Dir, "assets").Load(spec.Sprite.Sheet)
	if err != nil {
		logger.Fatal("load sprite sheet", zap.String("sheet", spec.Sprite.Sheet), zap.Error(err))
	}

	v := &viewer{sheet: sheet, machine: anim.NewMachine(clips, spec.AnimTuning())}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Player Clips")
	if err := ebiten.RunGame(v); err != nil {
		logger.Error("run clip viewer", zap.Error(err))
	}
}
