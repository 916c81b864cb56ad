package scenegraph

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface is a double-buffered Surface that doubles as the ebiten.Game
// presenting the scene. The loop goroutine draws into the back image between
// LockFrame and UnlockAndPresent; presenting swaps it with the front image,
// which Draw copies to the screen. Both the swap and the copy hold the same
// mutex.
type EbitenSurface struct {
	mu        sync.Mutex
	width     int
	height    int
	back      *ebiten.Image
	front     *ebiten.Image
	frame     *ImageFrame
	locked    bool
	presented uint64

	sink    InputSink
	pointer pointerTracker

	// OnUpdate, when set, runs at the end of each Ebitengine update. Returning
	// an error (for example ebiten.Termination) ends the game.
	OnUpdate func() error
}

// NewEbitenSurface creates an unsized surface. LockFrame reports no buffer
// until SetFixedSize is called.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{}
}

// SetInputSink routes polled touch and mouse input to sink.
func (e *EbitenSurface) SetInputSink(sink InputSink) {
	e.mu.Lock()
	e.sink = sink
	e.mu.Unlock()
}

// SetFixedSize allocates both buffers at width × height. Any previously
// allocated buffers are released.
func (e *EbitenSurface) SetFixedSize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.back != nil {
		e.back.Deallocate()
		e.front.Deallocate()
	}
	e.width, e.height = width, height
	e.back = ebiten.NewImage(width, height)
	e.front = ebiten.NewImage(width, height)
	e.frame = NewImageFrame(e.back)
	e.locked = false
}

// FixedSize returns the size set by SetFixedSize.
func (e *EbitenSurface) FixedSize() (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// LockFrame hands out the back buffer. It reports false before SetFixedSize
// and while a previously locked frame has not been presented.
func (e *EbitenSurface) LockFrame() (FrameBuffer, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.back == nil || e.locked {
		return nil, false
	}
	e.locked = true
	return e.frame, true
}

// UnlockAndPresent makes fb the visible frame. Frames not obtained from
// LockFrame are ignored.
func (e *EbitenSurface) UnlockAndPresent(fb FrameBuffer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.locked || fb != FrameBuffer(e.frame) {
		return
	}
	e.back, e.front = e.front, e.back
	e.frame = NewImageFrame(e.back)
	e.locked = false
	e.presented++
}

// Presented returns the number of frames presented.
func (e *EbitenSurface) Presented() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.presented
}

// Update polls input. Implements ebiten.Game.
func (e *EbitenSurface) Update() error {
	e.mu.Lock()
	sink := e.sink
	e.mu.Unlock()
	if sink != nil {
		e.pointer.poll(sink)
	}
	if e.OnUpdate != nil {
		return e.OnUpdate()
	}
	return nil
}

// Draw copies the last presented frame to screen. Implements ebiten.Game.
func (e *EbitenSurface) Draw(screen *ebiten.Image) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.front == nil {
		return
	}
	screen.DrawImage(e.front, nil)
}

// Layout reports the fixed size, so Ebitengine scales the frame to the
// window or device screen. Implements ebiten.Game.
func (e *EbitenSurface) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.width == 0 || e.height == 0 {
		return outsideWidth, outsideHeight
	}
	return e.width, e.height
}
