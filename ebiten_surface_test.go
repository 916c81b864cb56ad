package scenegraph

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenSurfaceUnsized(t *testing.T) {
	e := NewEbitenSurface()
	if _, ok := e.LockFrame(); ok {
		t.Error("LockFrame should fail before SetFixedSize")
	}
	if w, h := e.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, want outside size when unsized", w, h)
	}
}

func TestEbitenSurfaceLockPresent(t *testing.T) {
	e := NewEbitenSurface()
	e.SetFixedSize(32, 48)

	if w, h := e.FixedSize(); w != 32 || h != 48 {
		t.Errorf("FixedSize = %dx%d", w, h)
	}
	if w, h := e.Layout(800, 600); w != 32 || h != 48 {
		t.Errorf("Layout = %dx%d, want 32x48", w, h)
	}

	fb, ok := e.LockFrame()
	if !ok {
		t.Fatal("LockFrame failed")
	}
	if _, ok := e.LockFrame(); ok {
		t.Error("second LockFrame before present should fail")
	}
	back := fb.(*ImageFrame).Image()
	if b := back.Bounds(); b.Dx() != 32 || b.Dy() != 48 {
		t.Errorf("frame size = %v", b)
	}

	e.UnlockAndPresent(fb)
	if e.Presented() != 1 {
		t.Errorf("Presented = %d, want 1", e.Presented())
	}
	if e.front != back {
		t.Error("presented image should become the front buffer")
	}

	fb2, ok := e.LockFrame()
	if !ok {
		t.Fatal("LockFrame after present failed")
	}
	if fb2.(*ImageFrame).Image() == back {
		t.Error("next frame should use the other buffer")
	}
}

func TestEbitenSurfaceIgnoresForeignFrame(t *testing.T) {
	e := NewEbitenSurface()
	e.SetFixedSize(8, 8)
	if _, ok := e.LockFrame(); !ok {
		t.Fatal("LockFrame failed")
	}
	e.UnlockAndPresent(&recordingFrame{})
	if e.Presented() != 0 {
		t.Error("foreign frame should not be presented")
	}
}

type sinkRecorder struct{ n int }

func (s *sinkRecorder) Touch(TouchKind, Vec2) { s.n++ }

func TestEbitenSurfaceUpdateHook(t *testing.T) {
	e := NewEbitenSurface()
	e.OnUpdate = func() error { return ebiten.Termination }
	if err := e.Update(); err != ebiten.Termination {
		t.Errorf("Update = %v, want ebiten.Termination", err)
	}
}

func TestSceneSatisfiesInputSink(t *testing.T) {
	var _ InputSink = NewScene(nil)
	var _ InputSink = &sinkRecorder{}
	var _ Surface = NewEbitenSurface()
	var _ ebiten.Game = NewEbitenSurface()
}
