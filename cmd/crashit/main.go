// Crashit runs the scenegraph demo game in a desktop window: steer the
// shuttle with the mouse or a touch and shoot down falling asteroids.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/scenegraph"
	"github.com/phanxgames/scenegraph/internal/crashit"
	"github.com/phanxgames/scenegraph/internal/save"
)

// windowScale is the desktop window size relative to the base size when the
// config does not set a physical size.
const windowScale = 2

func main() {
	configPath := flag.String("config", "", "path to a YAML config (defaults to the embedded one)")
	debug := flag.Bool("debug", false, "log per-frame timings and enable tree checks")
	flag.Parse()

	cfg, err := crashit.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if *debug {
		cfg.Scene.Debug = true
		level = slog.LevelDebug
	}
	scenegraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	scores, err := save.Open(cfg.AppName)
	if err != nil {
		log.Printf("Warning: %v (best score kept in memory)", err)
	}

	window := scenegraph.FixedMetrics{
		Width:  cfg.Scene.BaseSize.Width * windowScale,
		Height: cfg.Scene.BaseSize.Height * windowScale,
	}
	app := crashit.NewApp(cfg, window, scores)
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
	defer app.Stop()

	app.Surface().OnUpdate = func() error {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		return nil
	}

	w, h := cfg.Scene.Metrics(window).PhysicalSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Scene.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app.Game()); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("game ended: %v", err)
	}
}
