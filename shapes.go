package scenegraph

import "github.com/hajimehoshi/ebiten/v2"

// RectShape is a Drawable solid rectangle.
type RectShape struct {
	Bounds Rect
	Color  Color
}

// Render fills the rectangle.
func (r *RectShape) Render(fb FrameBuffer) {
	fb.FillRect(r.Bounds, r.Color)
}

// NewRect creates a node rendering a solid rectangle.
func NewRect(name string, bounds Rect, c Color) (*Node, *RectShape) {
	shape := &RectShape{Bounds: bounds, Color: c}
	return NewDrawable(name, shape), shape
}

// Label is a Drawable line of debug-font text.
type Label struct {
	Pos  Vec2
	Text string
}

// Render draws the text with its top-left corner at Pos.
func (l *Label) Render(fb FrameBuffer) {
	fb.DrawText(l.Text, int(l.Pos.X), int(l.Pos.Y))
}

// NewLabel creates a node rendering text at pos.
func NewLabel(name string, pos Vec2, text string) (*Node, *Label) {
	label := &Label{Pos: pos, Text: text}
	return NewDrawable(name, label), label
}

// Sprite draws an image. It needs a FrameBuffer backed by an *ebiten.Image
// (such as ImageFrame); on any other buffer it falls back to a filled
// rectangle of the image's size in Fallback.
type Sprite struct {
	Image    *ebiten.Image
	Pos      Vec2
	ScaleX   float64
	ScaleY   float64
	Fallback Color
}

// imageFrame is implemented by frame buffers that expose their image.
type imageFrame interface {
	Image() *ebiten.Image
}

// Render draws the sprite at Pos.
func (sp *Sprite) Render(fb FrameBuffer) {
	if sp.Image == nil {
		return
	}
	sx, sy := sp.ScaleX, sp.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if f, ok := fb.(imageFrame); ok {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(sp.Pos.X, sp.Pos.Y)
		f.Image().DrawImage(sp.Image, &op)
		return
	}
	b := sp.Image.Bounds()
	fb.FillRect(Rect{
		X:      sp.Pos.X,
		Y:      sp.Pos.Y,
		Width:  float64(b.Dx()) * sx,
		Height: float64(b.Dy()) * sy,
	}, sp.Fallback)
}

// NewSprite creates a node drawing img at pos.
func NewSprite(name string, img *ebiten.Image, pos Vec2) (*Node, *Sprite) {
	sp := &Sprite{Image: img, Pos: pos, ScaleX: 1, ScaleY: 1, Fallback: ColorWhite}
	return NewDrawable(name, sp), sp
}
