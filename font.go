package scenegraph

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is a TrueType face for TextLabel.
type Font struct {
	face *text.GoTextFace
	lh   float64 // line height
}

// LoadFont parses TTF or OTF data and returns a face of the given size.
func LoadFont(ttf []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("scenegraph: parse font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// LineHeight returns the distance between baselines.
func (f *Font) LineHeight() float64 { return f.lh }

// Measure returns the size of s rendered in f.
func (f *Font) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// TextLabel draws text in a TrueType font. Like Sprite it needs an
// image-backed FrameBuffer; elsewhere, or without a Font, it falls back to
// the buffer's debug text.
type TextLabel struct {
	Font  *Font
	Pos   Vec2
	Text  string
	Color Color
}

// Render draws the text with its top-left corner at Pos.
func (l *TextLabel) Render(fb FrameBuffer) {
	f, ok := fb.(imageFrame)
	if !ok || l.Font == nil {
		fb.DrawText(l.Text, int(l.Pos.X), int(l.Pos.Y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.Pos.X, l.Pos.Y)
	op.ColorScale.Scale(float32(l.Color.R), float32(l.Color.G), float32(l.Color.B), float32(l.Color.A))
	op.LineSpacing = l.Font.lh
	text.Draw(f.Image(), l.Text, l.Font.face, op)
}

// NewTextLabel creates a node drawing white text in font at pos.
func NewTextLabel(name string, font *Font, pos Vec2, s string) (*Node, *TextLabel) {
	label := &TextLabel{Font: font, Pos: pos, Text: s, Color: ColorWhite}
	return NewDrawable(name, label), label
}
