package scenegraph

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	label := &Label{Pos: Vec2{X: 10, Y: 20}}
	node := NewDrawable("label", label)

	g := TweenPosition(node, &label.Pos, Vec2{X: 100, Y: 200}, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if g.Done {
		t.Fatal("should not be done halfway")
	}
	if math.Abs(label.Pos.X-55) > 0.5 {
		t.Errorf("X halfway = %f, want ~55", label.Pos.X)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(label.Pos.X-100) > 0.5 || math.Abs(label.Pos.Y-200) > 0.5 {
		t.Errorf("Pos = %v, want ~(100, 200)", label.Pos)
	}
}

func TestTweenRectPosition(t *testing.T) {
	node, shape := NewRect("r", Rect{X: 0, Y: 0, Width: 4, Height: 4}, ColorWhite)
	g := TweenRectPosition(node, &shape.Bounds, 8, -8, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)
	if !g.Done {
		t.Fatal("expected Done")
	}
	if math.Abs(shape.Bounds.X-8) > 0.01 || math.Abs(shape.Bounds.Y+8) > 0.01 {
		t.Errorf("Bounds = %v, want (8, -8)", shape.Bounds)
	}
	if shape.Bounds.Width != 4 {
		t.Error("size should not change")
	}
}

func TestTweenColorReachesTarget(t *testing.T) {
	node, shape := NewRect("r", Rect{}, Color{0, 0, 0, 1})
	g := TweenColor(node, &shape.Color, Color{1, 0.5, 0.25, 0}, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}
	c := shape.Color
	if math.Abs(c.R-1) > 0.01 || math.Abs(c.G-0.5) > 0.01 || math.Abs(c.B-0.25) > 0.01 || math.Abs(c.A) > 0.01 {
		t.Errorf("Color = %v", c)
	}
}

func TestTweenFloatUnbound(t *testing.T) {
	v := 1.0
	g := TweenFloat(nil, &v, 3, 1.0, ease.Linear)
	g.Update(1.0)
	if !g.Done || math.Abs(v-3) > 0.01 {
		t.Errorf("v = %f, Done = %v", v, g.Done)
	}
}

func TestTweenStopsWhenNodeRemoved(t *testing.T) {
	s, _ := newTestScene(t, nil)
	label := &Label{}
	node := NewDrawable("label", label)
	g := TweenPosition(node, &label.Pos, Vec2{X: 100}, 1.0, ease.Linear)

	// Not yet attached: the tween still runs.
	g.Update(0.25)
	if g.Done || label.Pos.X == 0 {
		t.Fatal("tween on a never-attached node should run")
	}

	addLive(s, node)
	g.Update(0.25)

	s.RemoveChild(node)
	s.reconcile()
	x := label.Pos.X
	g.Update(0.25)

	if !g.Done {
		t.Error("tween should stop once its node is removed")
	}
	if label.Pos.X != x {
		t.Error("stopped tween must not write")
	}
}
