package scenegraph

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FrameBuffer is the drawing target handed out by a Surface for one frame.
type FrameBuffer interface {
	// Clear fills the whole buffer with c.
	Clear(c Color)
	// FillRect fills r with c.
	FillRect(r Rect, c Color)
	// DrawText draws white debug text with its top-left corner at (x, y).
	DrawText(text string, x, y int)
}

// Drawable is the optional capability a Node carries when it produces pixels.
// Render is called once per frame, in render order, on the loop goroutine.
type Drawable interface {
	Render(fb FrameBuffer)
}

// Surface is the platform drawing surface the scene renders into.
//
// LockFrame may report false when no buffer is available; the scene skips
// rendering for that frame. UnlockAndPresent must serialize against any other
// consumer of the surface. All three methods are called from the loop
// goroutine at roughly the frame rate.
type Surface interface {
	SetFixedSize(width, height int)
	LockFrame() (FrameBuffer, bool)
	UnlockAndPresent(fb FrameBuffer)
}

// ScreenMetrics reports the physical pixel dimensions of the display.
// It is queried once, from Scene.Init.
type ScreenMetrics interface {
	PhysicalSize() (width, height int)
}

// FixedMetrics is a ScreenMetrics with constant dimensions.
type FixedMetrics struct {
	Width, Height int
}

// PhysicalSize returns the configured dimensions.
func (m FixedMetrics) PhysicalSize() (int, int) {
	return m.Width, m.Height
}

// MonitorMetrics reads the current Ebitengine monitor, converting its
// device-independent size to physical pixels with the device scale factor.
type MonitorMetrics struct{}

// PhysicalSize returns the monitor size in physical pixels, or zeros when no
// monitor is known yet (before Ebitengine has started on some platforms).
func (MonitorMetrics) PhysicalSize() (int, int) {
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0
	}
	w, h := m.Size()
	f := m.DeviceScaleFactor()
	return int(float64(w) * f), int(float64(h) * f)
}

// ImageFrame is a FrameBuffer backed by an *ebiten.Image.
type ImageFrame struct {
	img *ebiten.Image
}

// NewImageFrame wraps img.
func NewImageFrame(img *ebiten.Image) *ImageFrame {
	return &ImageFrame{img: img}
}

// Image returns the underlying image for drawables that need direct access.
func (f *ImageFrame) Image() *ebiten.Image {
	return f.img
}

// Clear fills the image with c.
func (f *ImageFrame) Clear(c Color) {
	f.img.Fill(c.toRGBA())
}

// FillRect fills r with c.
func (f *ImageFrame) FillRect(r Rect, c Color) {
	vector.DrawFilledRect(f.img,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		c.toRGBA(), false)
}

// DrawText prints text with the Ebitengine debug font.
func (f *ImageFrame) DrawText(text string, x, y int) {
	ebitenutil.DebugPrintAt(f.img, text, x, y)
}
