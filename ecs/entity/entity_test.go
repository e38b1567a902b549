package entity

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func loadSpecs(t *testing.T) (*prefabs.WorldSpec, *prefabs.PlayerSpec) {
	t.Helper()
	prev := prefabs.Dir()
	prefabs.SetDir("")
	t.Cleanup(func() { prefabs.SetDir(prev) })

	ws, err := prefabs.LoadWorldSpec()
	if err != nil {
		t.Fatalf("world spec: %v", err)
	}
	ps, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("player spec: %v", err)
	}
	return ws, ps
}

func TestNewSceneBuildsPlayerAndGround(t *testing.T) {
	ws, ps := loadSpecs(t)
	scene, err := NewScene(ws, ps)
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	w := scene.World

	checks := []struct {
		name string
		ok   bool
	}{
		{"tag", ecs.Has(w, scene.Player, component.PlayerTagComponent.Kind())},
		{"box_tag", ecs.Has(w, scene.Player, component.BoxTagComponent.Kind())},
		{"player", ecs.Has(w, scene.Player, component.PlayerComponent.Kind())},
		{"input", ecs.Has(w, scene.Player, component.InputComponent.Kind())},
		{"state", ecs.Has(w, scene.Player, component.PlayerStateComponent.Kind())},
		{"animation", ecs.Has(w, scene.Player, component.AnimationComponent.Kind())},
		{"sprite", ecs.Has(w, scene.Player, component.SpriteComponent.Kind())},
		{"ground_tag", ecs.Has(w, scene.Ground, component.GroundTagComponent.Kind())},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if !c.ok {
				t.Fatalf("missing %s", c.name)
			}
		})
	}

	pb, _ := ecs.Get(w, scene.Player, component.PhysicsBodyComponent.Kind())
	if pos := pb.Body.Position(); pos != (cp.Vector{X: 400, Y: 550}) {
		t.Fatalf("unexpected spawn %v", pos)
	}
	if pb.Body.Mass() != 1 {
		t.Fatalf("expected mass 1, got %v", pb.Body.Mass())
	}
	a, _ := ecs.Get(w, scene.Player, component.AnimationComponent.Kind())
	if a.Machine.State() != anim.Idle {
		t.Fatalf("expected idle start, got %s", a.Machine.State())
	}
	g, _ := ecs.Get(w, scene.Ground, component.PhysicsBodyComponent.Kind())
	if !g.Static || g.Shape == nil {
		t.Fatalf("ground should be a static shape: %+v", g)
	}
}

func TestNewBoxLimit(t *testing.T) {
	ws, ps := loadSpecs(t)
	ws.MaxBoxes = 2
	scene, err := NewScene(ws, ps)
	if err != nil {
		t.Fatalf("scene: %v", err)
	}

	if _, err := scene.SpawnBox(cp.Vector{X: 100, Y: 300}); err != nil {
		t.Fatalf("first box: %v", err)
	}
	_, err = scene.SpawnBox(cp.Vector{X: 200, Y: 300})
	if !errors.Is(err, ErrBoxLimit) {
		t.Fatalf("expected ErrBoxLimit, got %v", err)
	}
	if got := ecs.Count(scene.World, component.BoxTagComponent.Kind()); got != 2 {
		t.Fatalf("expected 2 boxes, got %d", got)
	}
}

func TestNewBoxRejectsBadShape(t *testing.T) {
	ws, ps := loadSpecs(t)
	scene, err := NewScene(ws, ps)
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	before := len(ecs.Entities(scene.World))
	if _, err := NewBox(scene.World, scene.Physics, prefabs.BoxSpec{Width: 0, Height: 10}, 0, cp.Vector{}); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if got := len(ecs.Entities(scene.World)); got != before {
		t.Fatalf("failed box leaked an entity: %d -> %d", before, got)
	}
}

func TestDestroyBodyRemovesFromSpace(t *testing.T) {
	ws, ps := loadSpecs(t)
	scene, err := NewScene(ws, ps)
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	e, err := scene.SpawnBox(cp.Vector{X: 100, Y: 300})
	if err != nil {
		t.Fatal(err)
	}
	pb, _ := ecs.Get(scene.World, e, component.PhysicsBodyComponent.Kind())
	body, shape := pb.Body, pb.Shape

	if !DestroyBody(scene.World, scene.Physics, e) {
		t.Fatalf("destroy failed")
	}
	space := scene.Physics.Space()
	if space.ContainsBody(body) || space.ContainsShape(shape) {
		t.Fatalf("body still in space")
	}
}

func TestApplyPlayerSpec(t *testing.T) {
	ws, ps := loadSpecs(t)
	scene, err := NewScene(ws, ps)
	if err != nil {
		t.Fatalf("scene: %v", err)
	}

	updated := *ps
	updated.Movement.MaxSpeed = 400
	updated.Ground.Tolerance = 0
	updated.Animation.WalkThreshold = 20
	if err := ApplyPlayerSpec(scene.World, scene.Player, &updated); err != nil {
		t.Fatalf("apply: %v", err)
	}
	p, _ := ecs.Get(scene.World, scene.Player, component.PlayerComponent.Kind())
	if p.Move.MaxSpeed != 400 || p.Ground.GroundTolerance != 0 {
		t.Fatalf("tuning not applied: %+v", p)
	}
	a, _ := ecs.Get(scene.World, scene.Player, component.AnimationComponent.Kind())
	if a.Machine.Tuning().WalkThreshold != 20 {
		t.Fatalf("anim tuning not applied")
	}

	broken := *ps
	broken.Animation.Clips = nil
	if err := ApplyPlayerSpec(scene.World, scene.Player, &broken); err == nil {
		t.Fatalf("expected error for missing clips")
	}
	if p.Move.MaxSpeed != 400 {
		t.Fatalf("failed reload must not change tuning")
	}

	emptyWalk := *ps
	emptyWalk.Animation.Clips = make(map[string]prefabs.ClipSpec, len(ps.Animation.Clips))
	for name, c := range ps.Animation.Clips {
		emptyWalk.Animation.Clips[name] = c
	}
	walk := emptyWalk.Animation.Clips["walk"]
	walk.Frames = nil
	emptyWalk.Animation.Clips["walk"] = walk
	if err := ApplyPlayerSpec(scene.World, scene.Player, &emptyWalk); !errors.Is(err, anim.ErrEmptyClip) {
		t.Fatalf("expected ErrEmptyClip for a zero-frame clip, got %v", err)
	}
	if clip, ok := a.Machine.Clip(); !ok || clip.FrameCount() == 0 {
		t.Fatalf("rejected reload must keep the playable clips")
	}
}
