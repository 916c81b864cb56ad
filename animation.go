package scenegraph

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 values simultaneously. Create one via
// the convenience constructors and call Update(dt) each frame, typically from
// Behavior.Update.
//
// A group may be bound to a Node: once that node has been attached to a scene
// and later removed, the group stops without writing.
type TweenGroup struct {
	tweens   [4]*gween.Tween
	count    int
	fields   [4]*float64
	target   *Node
	attached bool
	Done     bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil {
		if g.target.Attached() {
			g.attached = true
		} else if g.attached {
			g.Done = true
			return
		}
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenFloat animates a single value.
func TweenFloat(node *Node, field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenPosition animates pos to the given target coordinates.
func TweenPosition(node *Node, pos *Vec2, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(pos.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(pos.Y), float32(to.Y), duration, fn)
	g.fields[0] = &pos.X
	g.fields[1] = &pos.Y
	return g
}

// TweenRectPosition animates the top-left corner of r.
func TweenRectPosition(node *Node, r *Rect, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(r.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(r.Y), float32(toY), duration, fn)
	g.fields[0] = &r.X
	g.fields[1] = &r.Y
	return g
}

// TweenColor animates all four components of c.
func TweenColor(node *Node, c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}
