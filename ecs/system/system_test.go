package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/prefabs"
)

const frameDT = 1.0 / 60

type scriptedSource struct {
	intent controller.Intent
	spawns []cp.Vector
}

func (s *scriptedSource) Intent() controller.Intent { return s.intent }

func (s *scriptedSource) Spawns() []cp.Vector {
	out := s.spawns
	s.spawns = nil
	return out
}

func newTestScene(t *testing.T, spawnY float64) *entity.Scene {
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
	ps.Spawn.Y = spawnY
	scene, err := entity.NewScene(ws, ps)
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	return scene
}

func run(s *ecs.Scheduler, w *ecs.World, frames int) {
	for i := 0; i < frames; i++ {
		s.Update(w, frameDT)
	}
}

func playerParts(t *testing.T, scene *entity.Scene) (*component.PhysicsBody, *component.PlayerState, *anim.Machine) {
	t.Helper()
	w := scene.World
	pb, ok := ecs.Get(w, scene.Player, component.PhysicsBodyComponent.Kind())
	if !ok {
		t.Fatalf("player has no body")
	}
	st, ok := ecs.Get(w, scene.Player, component.PlayerStateComponent.Kind())
	if !ok {
		t.Fatalf("player has no state")
	}
	a, ok := ecs.Get(w, scene.Player, component.AnimationComponent.Kind())
	if !ok || a.Machine == nil {
		t.Fatalf("player has no animation")
	}
	return pb, st, a.Machine
}

func TestFallingPlayerIsAirborne(t *testing.T) {
	scene := newTestScene(t, 550)
	sched := NewFrameScheduler(scene, StaticIntent{}, nil)
	run(sched, scene.World, 3)

	pb, st, m := playerParts(t, scene)
	if st.Grounded {
		t.Fatalf("player high above the ground should not be grounded")
	}
	if m.State() != anim.Jump {
		t.Fatalf("expected jump pose while airborne, got %s", m.State())
	}
	if pb.Body.Velocity().Y >= 0 {
		t.Fatalf("expected falling velocity, got %v", pb.Body.Velocity())
	}
	tr, _ := ecs.Get(scene.World, scene.Player, component.TransformComponent.Kind())
	if tr.Y != pb.Body.Position().Y {
		t.Fatalf("transform not synced: %v vs %v", tr.Y, pb.Body.Position().Y)
	}
}

func TestRestingPlayerIsIdle(t *testing.T) {
	scene := newTestScene(t, 75)
	sched := NewFrameScheduler(scene, StaticIntent{}, nil)
	run(sched, scene.World, 30)

	_, st, m := playerParts(t, scene)
	if !st.Grounded {
		t.Fatalf("resting player should be grounded")
	}
	if m.State() != anim.Idle {
		t.Fatalf("expected idle, got %s", m.State())
	}
}

func TestDriveLeftMatchesSelection(t *testing.T) {
	scene := newTestScene(t, 75)
	src := &scriptedSource{}
	sched := NewFrameScheduler(scene, src, nil)
	run(sched, scene.World, 30)

	src.intent = controller.Intent{Left: true}
	run(sched, scene.World, 1)

	pb, st, m := playerParts(t, scene)
	vx := pb.Body.Velocity().X
	// force/mass*dt = 1500/1/60 = 25; contact friction can only slow it.
	if vx >= 0 || vx < -25.0001 {
		t.Fatalf("expected small negative vx, got %v", vx)
	}
	if want := anim.Select(st.Grounded, vx, 10); m.State() != want {
		t.Fatalf("expected %s for vx=%v, got %s", want, vx, m.State())
	}
	if !m.FacingLeft() {
		t.Fatalf("expected facing left at vx=%v", vx)
	}
}

func TestJumpFromGround(t *testing.T) {
	scene := newTestScene(t, 75)
	src := &scriptedSource{}
	sched := NewFrameScheduler(scene, src, nil)
	run(sched, scene.World, 30)

	src.intent = controller.Intent{Jump: true}
	run(sched, scene.World, 1)

	pb, st, m := playerParts(t, scene)
	if !st.Jumped {
		t.Fatalf("expected jump on grounded frame")
	}
	vy := pb.Body.Velocity().Y
	// impulse/mass = 400, minus one frame of gravity.
	if math.Abs(vy-(400-980*frameDT)) > 5 {
		t.Fatalf("unexpected vy after jump: %v", vy)
	}
	if st.Grounded || m.State() != anim.Jump {
		t.Fatalf("expected airborne jump pose, grounded=%v state=%s", st.Grounded, m.State())
	}

	run(sched, scene.World, 1)
	if st.Jumped {
		t.Fatalf("held jump must not fire while rising")
	}
}

func TestSpawnRespectsLimit(t *testing.T) {
	scene := newTestScene(t, 75)
	scene.Spec.MaxBoxes = 3
	src := &scriptedSource{spawns: []cp.Vector{{X: 100, Y: 300}, {X: 200, Y: 300}, {X: 300, Y: 300}}}
	sched := NewFrameScheduler(scene, src, nil)
	run(sched, scene.World, 1)

	w := scene.World
	if got := ecs.Count(w, component.BoxTagComponent.Kind()); got != 3 {
		t.Fatalf("expected 3 boxes including the player, got %d", got)
	}
	if got := ecs.Count(w, component.SpawnRequestComponent.Kind()); got != 0 {
		t.Fatalf("expected requests consumed, got %d", got)
	}

	var spawn *SpawnSystem
	for _, s := range sched.Systems() {
		if ss, ok := s.(*SpawnSystem); ok {
			spawn = ss
		}
	}
	if spawn == nil || spawn.Rejected() != 1 {
		t.Fatalf("expected one rejected request, got %v", spawn)
	}
}

func TestSpawnedBoxesFallAndSync(t *testing.T) {
	scene := newTestScene(t, 75)
	src := &scriptedSource{spawns: []cp.Vector{{X: 600, Y: 400}}}
	sched := NewFrameScheduler(scene, src, nil)
	run(sched, scene.World, 10)

	var boxes int
	ecs.ForEach2(scene.World, component.BoxTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.BoxTag, tr *component.Transform) {
		if e == scene.Player {
			return
		}
		boxes++
		if tr.Y >= 400 {
			t.Fatalf("spawned box should fall, y=%v", tr.Y)
		}
	})
	if boxes != 1 {
		t.Fatalf("expected one spawned box, got %d", boxes)
	}
}

func TestInputSystemWritesOnlyPlayers(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	_ = ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{})
	other := ecs.CreateEntity(w)
	_ = ecs.Add(w, other, component.InputComponent.Kind(), &component.Input{})

	NewInputSystem(StaticIntent{Right: true}).Update(w, frameDT)

	in, _ := ecs.Get(w, player, component.InputComponent.Kind())
	if !in.Intent.Right {
		t.Fatalf("player intent not written")
	}
	otherIn, _ := ecs.Get(w, other, component.InputComponent.Kind())
	if otherIn.Intent.Right {
		t.Fatalf("non-player intent should be untouched")
	}
}
