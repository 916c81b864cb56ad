package scenegraph

import (
	"slices"
	"strconv"
	"time"
)

// Overlay geometry. The markers frame the logical size so scaling problems are
// visible at a glance.
const (
	overlayMarkerSize = 40
	overlayFPSOffset  = 32 // from the bottom edge to the top of the FPS line
	overlayNodeOffset = 16 // from the bottom edge to the top of the node line
)

// renderOrder groups live nodes into z-order buckets. Buffers are reused
// between frames; only the loop goroutine touches them.
type renderOrder struct {
	buckets map[int][]*Node
	keys    []int
	drawn   int // drawables rendered in the last pass
}

// build fills the buckets from nodes. Within a bucket nodes keep the order in
// which they appear in nodes, and keys are sorted ascending.
func (o *renderOrder) build(nodes []*Node) {
	if o.buckets == nil {
		o.buckets = make(map[int][]*Node)
	}
	for z, bucket := range o.buckets {
		clear(bucket)
		o.buckets[z] = bucket[:0]
	}
	o.keys = o.keys[:0]

	for _, n := range nodes {
		bucket, ok := o.buckets[n.ZOrder]
		if !ok || len(bucket) == 0 {
			o.keys = append(o.keys, n.ZOrder)
		}
		o.buckets[n.ZOrder] = append(bucket, n)
	}
	slices.Sort(o.keys)

	// Drop buckets that stayed empty so z values that come and go do not
	// accumulate.
	for z, bucket := range o.buckets {
		if len(bucket) == 0 {
			delete(o.buckets, z)
		}
	}
}

// each calls fn for every drawable node in paint order: z ascending, then
// insertion order. Non-drawable nodes are skipped.
func (o *renderOrder) each(fn func(n *Node)) {
	o.drawn = 0
	for _, z := range o.keys {
		for _, n := range o.buckets[z] {
			if n.Drawable == nil {
				continue
			}
			fn(n)
			o.drawn++
		}
	}
}

// render paints the live set into fb: corner markers, scene content in
// z-order, then the FPS and node-count text.
func (s *Scene) render(fb FrameBuffer, now time.Time) {
	s.order.build(s.children)

	if s.ShowOverlay {
		fb.FillRect(Rect{X: 0, Y: 0, Width: overlayMarkerSize, Height: overlayMarkerSize}, ColorRed)
		fb.FillRect(Rect{
			X:      s.size.W - overlayMarkerSize,
			Y:      s.size.H - overlayMarkerSize,
			Width:  overlayMarkerSize,
			Height: overlayMarkerSize,
		}, ColorBlue)
	}

	s.order.each(func(n *Node) {
		n.Drawable.Render(fb)
	})

	fps := s.fps.tick(now)
	if s.ShowOverlay {
		h := int(s.size.H)
		fb.DrawText("FPS : "+strconv.Itoa(fps), 0, h-overlayFPSOffset)
		fb.DrawText("Nodes : "+strconv.Itoa(len(s.children)), 0, h-overlayNodeOffset)
	}
}
