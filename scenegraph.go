package scenegraph

import (
	"fmt"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a FrameBuffer.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBlack is the default scene background.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorWhite is used for overlay text.
	ColorWhite = Color{1, 1, 1, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
)

// toRGBA converts to a premultiplied color.RGBA for Ebitengine.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// ColorFrom converts any color.Color into a straight-alpha Color.
func ColorFrom(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	return Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 0xffff,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair in logical or physical pixels.
type Size struct {
	W, H float64
}

func (s Size) String() string {
	return fmt.Sprintf("(w: %g, h: %g)", s.W, s.H)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// TouchKind identifies a raw touch sample. The set is closed.
type TouchKind uint8

const (
	TouchDown TouchKind = iota // finger or button pressed
	TouchUp                    // finger or button released
	TouchMove                  // pointer moved while pressed
)

func (k TouchKind) String() string {
	switch k {
	case TouchDown:
		return "down"
	case TouchUp:
		return "up"
	case TouchMove:
		return "move"
	default:
		return fmt.Sprintf("TouchKind(%d)", uint8(k))
	}
}
