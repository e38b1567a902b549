package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// tiltedAngle is the rotation above which boxes use the tilted colour.
const tiltedAngle = 0.01

// Style holds the flat colours used for scenery and boxes.
type Style struct {
	Background   color.Color
	Ground       color.Color
	GroundHeight float64
	Box          color.Color
	BoxTilted    color.Color
}

// StyleFromSpec reads colours from the world prefab, falling back to the
// built-in palette.
func StyleFromSpec(ws *prefabs.WorldSpec) Style {
	s := Style{
		Background:   color.Black,
		Ground:       color.RGBA{R: 100, G: 100, B: 100, A: 255},
		GroundHeight: common.GroundHeight,
		Box:          color.RGBA{R: 255, G: 100, B: 100, A: 255},
		BoxTilted:    color.RGBA{R: 200, G: 50, B: 50, A: 255},
	}
	if ws == nil {
		return s
	}
	s.Background = ws.Background.Or(s.Background)
	s.Ground = ws.Ground.Color.Or(s.Ground)
	s.Box = ws.Box.Color.Or(s.Box)
	s.BoxTilted = ws.Box.TiltedColor.Or(s.BoxTilted)
	if ws.Ground.Height > 0 {
		s.GroundHeight = ws.Ground.Height
	}
	return s
}

// Renderer draws the world in screen space; physics space is y up.
type Renderer struct {
	style  Style
	sheets *Sheets
}

func NewRenderer(style Style, sheets *Sheets) *Renderer {
	if sheets == nil {
		sheets = NewSheets()
	}
	return &Renderer{style: style, sheets: sheets}
}

func (r *Renderer) Sheets() *Sheets {
	if r == nil {
		return nil
	}
	return r.sheets
}

func (r *Renderer) SetStyle(style Style) {
	if r == nil {
		return
	}
	r.style = style
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(r.style.Background)

	bounds := screen.Bounds()
	gh := r.style.GroundHeight
	vector.FillRect(screen, 0, float32(float64(bounds.Dy())-gh), float32(bounds.Dx()), float32(gh), r.style.Ground, false)

	ecs.ForEach2(w, component.BoxTagComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.BoxTag, pb *component.PhysicsBody) {
		if pb.Body == nil || ecs.Has(w, e, component.SpriteComponent.Kind()) {
			return
		}
		pos := pb.Body.Position()
		x, y := common.ToScreen(pos.X, pos.Y)
		clr := r.style.Box
		if math.Abs(pb.Body.Angle()) > tiltedAngle {
			clr = r.style.BoxTilted
		}
		vector.FillRect(screen, float32(x-pb.Width/2), float32(y-pb.Height/2), float32(pb.Width), float32(pb.Height), clr, false)
	})

	ecs.ForEach3(w,
		component.SpriteComponent.Kind(),
		component.AnimationComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(_ ecs.Entity, s *component.Sprite, a *component.Animation, pb *component.PhysicsBody) {
			r.drawSprite(screen, s, a, pb)
		})
}

// drawSprite draws the active frame scaled to Scale times the body width,
// bottom aligned with the body and mirrored when facing left. A missing
// sheet or frame draws nothing.
func (r *Renderer) drawSprite(screen *ebiten.Image, s *component.Sprite, a *component.Animation, pb *component.PhysicsBody) {
	if pb.Body == nil || a.Machine == nil {
		return
	}
	sheet := r.sheets.Get(s.Sheet)
	if sheet == nil {
		return
	}
	frame, ok := a.Machine.CurrentFrame()
	if !ok || frame.Empty() {
		return
	}
	sub, ok := sheet.SubImage(frame).(*ebiten.Image)
	if !ok {
		return
	}

	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	size := pb.Width * scale
	pos := pb.Body.Position()
	x, y := common.ToScreen(pos.X, pos.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(frame.Dx()), size/float64(frame.Dy()))
	if a.Machine.FacingLeft() {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(size, 0)
	}
	op.GeoM.Translate(x-size/2, y-size+pb.Height/2)
	screen.DrawImage(sub, op)
}
