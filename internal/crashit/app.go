package crashit

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scenegraph"
)

// App wires a Game into a Scene rendering on an EbitenSurface.
type App struct {
	cfg     Config
	metrics scenegraph.ScreenMetrics
	scene   *scenegraph.Scene
	surface *scenegraph.EbitenSurface
	game    *Game

	mu      sync.Mutex
	started bool
	lazyErr error
}

// NewApp builds the scene, surface and game. The scene is initialized by
// Start, so metrics are only read once the platform is ready. The physical
// size from cfg, when set, overrides metrics.
func NewApp(cfg Config, metrics scenegraph.ScreenMetrics, scores ScoreKeeper) *App {
	game := NewGame(cfg, scores, nil)
	scene := scenegraph.NewScene(game)
	cfg.Scene.Apply(scene)
	surface := scenegraph.NewEbitenSurface()
	surface.SetInputSink(scene)
	return &App{
		cfg:     cfg,
		metrics: cfg.Scene.Metrics(metrics),
		scene:   scene,
		surface: surface,
		game:    game,
	}
}

// Scene returns the scene driven by the app.
func (a *App) Scene() *scenegraph.Scene { return a.scene }

// Surface returns the Ebitengine surface the scene renders into.
func (a *App) Surface() *scenegraph.EbitenSurface { return a.surface }

// Behavior returns the game behavior.
func (a *App) Behavior() *Game { return a.game }

// Game returns the value to hand to ebiten.RunGame or mobile.SetGame.
func (a *App) Game() ebiten.Game { return a.surface }

// Start initializes the scene on first use and starts its loop goroutine.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.started {
		if err := a.scene.Init(a.cfg.Scene.Base(), a.surface, a.metrics); err != nil {
			return fmt.Errorf("init scene: %w", err)
		}
		a.started = true
	}
	return a.scene.Start()
}

// StartOnFirstUpdate defers Start to the surface's first Update, for
// platforms where screen metrics are unknown until Ebitengine runs. A start
// failure is returned from that Update, which ends the game.
func (a *App) StartOnFirstUpdate() {
	a.surface.OnUpdate = func() error {
		a.mu.Lock()
		started, err := a.started, a.lazyErr
		a.mu.Unlock()
		if started || err != nil {
			return err
		}
		if err := a.Start(); err != nil {
			a.mu.Lock()
			a.lazyErr = err
			a.mu.Unlock()
			return err
		}
		return nil
	}
}

// Stop halts the loop and saves the current score.
func (a *App) Stop() {
	a.scene.Stop()
	if err := a.game.SaveScore(); err != nil {
		scenegraph.Logger().Warn("save score on exit", slog.Any("error", err))
	}
}
