package scenegraph

import (
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"
)

// touchRecorder records touch hook invocations.
type touchRecorder struct {
	BehaviorFuncs
	calls []string
}

func (r *touchRecorder) TouchDown(p Vec2) { r.calls = append(r.calls, fmt.Sprintf("down %v", p)) }
func (r *touchRecorder) TouchUp(p Vec2)   { r.calls = append(r.calls, fmt.Sprintf("up %v", p)) }
func (r *touchRecorder) TouchMove(p Vec2) { r.calls = append(r.calls, fmt.Sprintf("move %v", p)) }

func TestTouchLastWriteWins(t *testing.T) {
	rec := &touchRecorder{}
	s, _ := newTestScene(t, rec)

	s.Touch(TouchDown, Vec2{X: 1, Y: 1})
	s.Touch(TouchMove, Vec2{X: 2, Y: 3})
	s.dispatchTouch()

	if !slices.Equal(rec.calls, []string{"move {2 3}"}) {
		t.Errorf("calls = %v, want [move {2 3}]", rec.calls)
	}
	if s.TouchDrops() != 1 {
		t.Errorf("TouchDrops = %d, want 1", s.TouchDrops())
	}
}

func TestDispatchTouchConsumesOnce(t *testing.T) {
	rec := &touchRecorder{}
	s, _ := newTestScene(t, rec)

	s.Touch(TouchUp, Vec2{X: 5, Y: 6})
	s.dispatchTouch()
	s.dispatchTouch()

	if !slices.Equal(rec.calls, []string{"up {5 6}"}) {
		t.Errorf("calls = %v, want a single up", rec.calls)
	}
}

func TestDispatchTouchEmptyIsNoop(t *testing.T) {
	rec := &touchRecorder{}
	s, _ := newTestScene(t, rec)
	s.dispatchTouch()
	if len(rec.calls) != 0 {
		t.Errorf("calls = %v, want none", rec.calls)
	}
}

func TestDispatchTouchKinds(t *testing.T) {
	tests := []struct {
		kind TouchKind
		want string
	}{
		{TouchDown, "down {7 8}"},
		{TouchUp, "up {7 8}"},
		{TouchMove, "move {7 8}"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			rec := &touchRecorder{}
			s, _ := newTestScene(t, rec)
			s.Touch(tt.kind, Vec2{X: 7, Y: 8})
			s.dispatchTouch()
			if !slices.Equal(rec.calls, []string{tt.want}) {
				t.Errorf("calls = %v, want [%s]", rec.calls, tt.want)
			}
		})
	}
}

func TestDispatchTouchUnknownKindIgnored(t *testing.T) {
	rec := &touchRecorder{}
	s, _ := newTestScene(t, rec)
	s.Touch(TouchKind(42), Vec2{})
	s.dispatchTouch()
	if len(rec.calls) != 0 {
		t.Errorf("calls = %v, want none", rec.calls)
	}
	if _, ok := s.mailbox.take(); ok {
		t.Error("mailbox should be consumed")
	}
}

type updateOnly struct{}

func (updateOnly) Ready(*Scene)             {}
func (updateOnly) Update(*Scene, time.Time) {}

func TestTouchWithoutHandlerIsConsumed(t *testing.T) {
	s, _ := newTestScene(t, updateOnly{})
	if s.touch != nil {
		t.Fatal("behavior without touch hooks should not be a TouchHandler")
	}
	s.Touch(TouchDown, Vec2{})
	s.dispatchTouch()
	if _, ok := s.mailbox.take(); ok {
		t.Error("mailbox should be consumed even without a handler")
	}
}

func TestTouchConcurrentWritersStayConsistent(t *testing.T) {
	s, _ := newTestScene(t, nil)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				kind := TouchKind(i % 3)
				// Position encodes the kind so a torn read is detectable.
				s.Touch(kind, Vec2{X: float64(kind), Y: float64(w)})
			}
		}(w)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		if ev, ok := s.mailbox.take(); ok && float64(ev.Kind) != ev.Pos.X {
			t.Fatalf("torn event: kind %v with position %v", ev.Kind, ev.Pos)
		}
		select {
		case <-done:
			return
		default:
		}
	}
}

func TestTouchKindString(t *testing.T) {
	if TouchDown.String() != "down" || TouchUp.String() != "up" || TouchMove.String() != "move" {
		t.Error("unexpected kind names")
	}
	if TouchKind(9).String() != "TouchKind(9)" {
		t.Errorf("String = %q", TouchKind(9).String())
	}
}
