package crashit

import (
	"testing"
	"time"

	"github.com/phanxgames/scenegraph"
)

func waitFrames(t *testing.T, s *scenegraph.Scene, n uint64) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for s.Frames() < n {
		if time.Now().After(deadline) {
			t.Fatalf("scene produced %d frames, want %d", s.Frames(), n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestAppStartStop(t *testing.T) {
	cfg := testConfig()
	keeper := &memKeeper{}
	app := NewApp(cfg, scenegraph.FixedMetrics{Width: 640, Height: 960}, keeper)
	if app.Game() != app.Surface() {
		t.Error("Game should be the Ebitengine surface")
	}

	if err := app.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitFrames(t, app.Scene(), 2)
	app.Stop()

	if w, h := app.Surface().FixedSize(); w != 320 || h != 480 {
		t.Errorf("surface size = %dx%d, want the scene size 320x480", w, h)
	}
	if sc := app.Scene().Scale(); sc.W != 2 || sc.H != 2 {
		t.Errorf("scale = %v, want 2", sc)
	}
	// stars container + 3 stars + shuttle + exhaust + hud
	if n := app.Scene().NumChildren(); n != 7 {
		t.Errorf("live nodes = %d, want 7", n)
	}
	if len(keeper.saves) != 1 {
		t.Errorf("saves = %v, want one save on Stop", keeper.saves)
	}
}

func TestAppPhysicalSizeOverride(t *testing.T) {
	cfg := testConfig()
	cfg.Scene.PhysicalSize.Width, cfg.Scene.PhysicalSize.Height = 320, 480
	app := NewApp(cfg, scenegraph.FixedMetrics{Width: 1, Height: 1}, nil)
	if err := app.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	app.Stop()
	if sc := app.Scene().Scale(); sc.W != 1 || sc.H != 1 {
		t.Errorf("scale = %v, want 1 from the configured physical size", sc)
	}
}

func TestAppStartOnFirstUpdate(t *testing.T) {
	app := NewApp(testConfig(), scenegraph.FixedMetrics{Width: 320, Height: 480}, nil)
	app.StartOnFirstUpdate()
	if app.Scene().Running() {
		t.Fatal("scene should not run before the first update")
	}

	if err := app.Surface().Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	waitFrames(t, app.Scene(), 1)
	if err := app.Surface().Update(); err != nil {
		t.Fatalf("second Update: %v", err)
	}
	app.Stop()
}

func TestAppStartOnFirstUpdateReportsInitError(t *testing.T) {
	app := NewApp(testConfig(), scenegraph.FixedMetrics{}, nil)
	app.StartOnFirstUpdate()
	if err := app.Surface().Update(); err == nil {
		t.Fatal("Update should fail when the screen has no size")
	}
	if err := app.Surface().Update(); err == nil {
		t.Error("the start error should be sticky")
	}
}
