package main

import (
	"fmt"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/clock"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

type Game struct {
	scene     *entity.Scene
	scheduler *ecs.Scheduler
	clock     *clock.FrameClock
	start     time.Time
	renderer  *render.Renderer
	watcher   *prefabs.Watcher
	logger    *zap.Logger

	pauseUI *ebitenui.UI
	overlay bool
	paused  bool
	quit    bool
}

func NewGame(scene *entity.Scene, scheduler *ecs.Scheduler, sheets *render.Sheets, watcher *prefabs.Watcher, overlay bool, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	cs := scene.Spec.Clock
	g := &Game{
		scene:     scene,
		scheduler: scheduler,
		clock:     clock.New(cs.Nominal, cs.Ceiling),
		start:     time.Now(),
		renderer:  render.NewRenderer(render.StyleFromSpec(scene.Spec), sheets),
		watcher:   watcher,
		logger:    logger,
		overlay:   overlay,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// Resume leaves the pause menu. The clock restarts so the paused time is
// not fed to the physics step.
func (g *Game) Resume() {
	if !g.paused {
		return
	}
	g.paused = false
	g.clock.Reset()
	g.logger.Info("resumed")
}

func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.paused {
			g.Resume()
		} else {
			g.paused = true
			g.logger.Info("paused", zap.Uint64("frame", g.scheduler.Frame()))
		}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay = !g.overlay
		g.logger.Info("debug overlay", zap.Bool("enabled", g.overlay))
	}
	g.reloadPrefabs()

	dt := g.clock.Tick(time.Since(g.start))
	g.scheduler.Update(g.scene.World, dt)
	return nil
}

// reloadPrefabs applies edits to the player prefab between frames.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Drain() {
		if name != prefabs.PlayerFile {
			g.logger.Debug("prefab changed, restart to apply", zap.String("file", name))
			continue
		}
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			g.logger.Warn("reload player prefab", zap.Error(err))
			continue
		}
		if err := entity.ApplyPlayerSpec(g.scene.World, g.scene.Player, spec); err != nil {
			g.logger.Warn("apply player prefab", zap.Error(err))
			continue
		}
		if _, err := g.renderer.Sheets().Reload(spec.Sprite.Sheet); err != nil {
			g.logger.Warn("load sprite sheet", zap.String("sheet", spec.Sprite.Sheet), zap.Error(err))
		}
		g.logger.Info("player prefab reloaded")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.scene.World, screen)
	if g.overlay {
		render.DrawPhysicsDebug(g.scene.Physics.Space(), screen)
		render.DrawPlayerStateDebug(g.scene.World, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frame: %d", g.scheduler.Frame()), 10, common.WindowHeight-20)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.WindowWidth, common.WindowHeight
}
