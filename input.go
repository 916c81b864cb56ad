package scenegraph

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchEvent is one raw touch sample.
type TouchEvent struct {
	Kind TouchKind
	Pos  Vec2
}

// touchMailbox holds at most one unconsumed TouchEvent. Writers overwrite it;
// the loop goroutine takes it. The mutex keeps the kind/position pair
// consistent for the reader.
type touchMailbox struct {
	mu     sync.Mutex
	edited bool
	event  TouchEvent
	drops  atomic.Uint64 // events overwritten before the loop consumed them
}

// edit replaces the pending event and marks it unconsumed.
func (m *touchMailbox) edit(kind TouchKind, pos Vec2) {
	m.mu.Lock()
	if m.edited {
		m.drops.Add(1)
	}
	m.event = TouchEvent{Kind: kind, Pos: pos}
	m.edited = true
	m.mu.Unlock()
}

// take returns the pending event and clears the edited flag. ok is false when
// nothing is pending.
func (m *touchMailbox) take() (ev TouchEvent, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.edited {
		return TouchEvent{}, false
	}
	m.edited = false
	return m.event, true
}

// InputSink receives raw touch samples. Scene implements it.
type InputSink interface {
	Touch(kind TouchKind, pos Vec2)
}

// Touch stores the latest touch sample for the next frame, replacing any
// sample the loop has not consumed yet. Safe to call from any goroutine.
func (s *Scene) Touch(kind TouchKind, pos Vec2) {
	s.mailbox.edit(kind, pos)
}

// TouchDrops returns how many touch samples were overwritten before the loop
// consumed them.
func (s *Scene) TouchDrops() uint64 {
	return s.mailbox.drops.Load()
}

// dispatchTouch hands the pending sample, if any, to the behavior's touch
// hooks.
func (s *Scene) dispatchTouch() {
	ev, ok := s.mailbox.take()
	if !ok || s.touch == nil {
		return
	}
	switch ev.Kind {
	case TouchDown:
		s.touch.TouchDown(ev.Pos)
	case TouchUp:
		s.touch.TouchUp(ev.Pos)
	case TouchMove:
		s.touch.TouchMove(ev.Pos)
	}
}

// --- Platform capture ---

// pointerTracker turns Ebitengine touch and mouse state into raw down/up/move
// samples. It follows the first active touch; the left mouse button is used
// when no touch is active. poll must be called from the Ebitengine update
// goroutine.
type pointerTracker struct {
	touchID  ebiten.TouchID
	touching bool
	mouse    bool
	lastX    int
	lastY    int
	touchBuf []ebiten.TouchID
}

// poll reads the current input state and forwards changes to sink.
func (p *pointerTracker) poll(sink InputSink) {
	if p.pollTouch(sink) {
		return
	}
	p.pollMouse(sink)
}

// pollTouch handles touch input and reports whether a touch was active or
// just ended this tick.
func (p *pointerTracker) pollTouch(sink InputSink) bool {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			x, y := inpututil.TouchPositionInPreviousTick(p.touchID)
			p.touching = false
			sink.Touch(TouchUp, Vec2{X: float64(x), Y: float64(y)})
			return true
		}
		x, y := ebiten.TouchPosition(p.touchID)
		if x != p.lastX || y != p.lastY {
			p.lastX, p.lastY = x, y
			sink.Touch(TouchMove, Vec2{X: float64(x), Y: float64(y)})
		}
		return true
	}

	p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
	if len(p.touchBuf) == 0 {
		return false
	}
	p.touchID = p.touchBuf[0]
	p.touching = true
	p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
	sink.Touch(TouchDown, Vec2{X: float64(p.lastX), Y: float64(p.lastY)})
	return true
}

func (p *pointerTracker) pollMouse(sink InputSink) {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.mouse = true
		p.lastX, p.lastY = x, y
		sink.Touch(TouchDown, Vec2{X: float64(x), Y: float64(y)})
	case p.mouse && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.mouse = false
		sink.Touch(TouchUp, Vec2{X: float64(x), Y: float64(y)})
	case p.mouse && (x != p.lastX || y != p.lastY):
		p.lastX, p.lastY = x, y
		sink.Touch(TouchMove, Vec2{X: float64(x), Y: float64(y)})
	}
}
