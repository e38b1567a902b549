package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/diag"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

func main() {
	flags, _, err := config.Parse(os.Args[0], os.Args[1:])
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
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		logger.Fatal("load world prefab", zap.Error(err))
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		logger.Fatal("load player prefab", zap.Error(err))
	}

	scene, err := entity.NewScene(worldSpec, playerSpec)
	if err != nil {
		logger.Fatal("build scene", zap.Error(err))
	}
	sheets := render.NewSheets(cfg.Prefabs.Dir, "assets")
	if _, err := sheets.Load(playerSpec.Sprite.Sheet); err != nil {
		logger.Warn("load sprite sheet, player will not be drawn",
			zap.String("sheet", playerSpec.Sprite.Sheet),
			zap.Error(err),
		)
	}

	input := NewInput()
	sched := system.NewFrameScheduler(scene, input, d.Named("system"))
	sched.Observe(diag.NewFrameLogger(d.Named("frame"), 0))

	var watcher *prefabs.Watcher
	if cfg.Debug.WatchPrefabs && cfg.Prefabs.Dir != "" {
		watcher, err = prefabs.NewWatcher(cfg.Prefabs.Dir)
		if err != nil {
			logger.Warn("watch prefabs", zap.String("dir", cfg.Prefabs.Dir), zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting",
		zap.String("world", worldSpec.Name),
		zap.Int("max_boxes", worldSpec.MaxBoxes),
		zap.Bool("overlay", cfg.Debug.Overlay),
	)
	game := NewGame(scene, sched, sheets, watcher, cfg.Debug.Overlay, d.Named("game"))
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", zap.Error(err))
	}
}
