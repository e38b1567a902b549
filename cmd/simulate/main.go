// Command simulate runs the frame loop headless with a scripted intent
// source and prints the player's final pose.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/diag"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/script"
	"go.uber.org/zap"
)

func main() {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	frames := fs.Int("frames", 240, "Number of frames to simulate")
	scriptName := fs.String("script", "walk_and_jump.tengo", "Intent script under prefabs/scripts")
	every := fs.Uint64("log-every", 0, "Log the player pose every N frames (0 disables)")
	flags := &config.Flags{}
	flags.Register(fs)
	_ = fs.Parse(os.Args[1:])

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

	if err := run(d, cfg, *scriptName, *frames, *every); err != nil {
		logger.Fatal("simulate", zap.Error(err))
	}
}

func run(d *diag.Diagnostics, cfg *config.Config, scriptName string, frames int, every uint64) error {
	prefabs.SetDir(cfg.Prefabs.Dir)
	ws, err := prefabs.LoadWorldSpec()
	if err != nil {
		return err
	}
	ps, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	scene, err := entity.NewScene(ws, ps)
	if err != nil {
		return err
	}
	src, err := script.Load(scriptName)
	if err != nil {
		return err
	}

	sched := system.NewFrameScheduler(scene, src, d.Named("system"))
	sched.Observe(diag.NewFrameLogger(d.Named("frame"), every))

	dt := ws.Clock.Nominal
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	for i := 0; i < frames; i++ {
		sched.Update(scene.World, dt)
		if err := src.Err(); err != nil {
			return fmt.Errorf("frame %d: %w", sched.Frame(), err)
		}
	}

	return report(scene, sched.Frame())
}

func report(scene *entity.Scene, frame uint64) error {
	w := scene.World
	pb, ok := ecs.Get(w, scene.Player, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return fmt.Errorf("player has no body")
	}
	st, _ := ecs.Get(w, scene.Player, component.PlayerStateComponent.Kind())
	a, _ := ecs.Get(w, scene.Player, component.AnimationComponent.Kind())

	pos, vel := pb.Body.Position(), pb.Body.Velocity()
	fmt.Printf("frame:    %d\n", frame)
	fmt.Printf("position: %.2f, %.2f\n", pos.X, pos.Y)
	fmt.Printf("velocity: %.2f, %.2f\n", vel.X, vel.Y)
	fmt.Printf("angle:    %.4f\n", pb.Body.Angle())
	if st != nil {
		fmt.Printf("grounded: %v\n", st.Grounded)
	}
	if a != nil && a.Machine != nil {
		snap := a.Machine.Snapshot()
		fmt.Printf("state:    %s (frame %d, facing left %v)\n", snap.State, snap.Frame, snap.FacingLeft)
	}
	fmt.Printf("boxes:    %d\n", ecs.Count(w, component.BoxTagComponent.Kind()))
	return nil
}
