package scenegraph

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFrameInterval is the fixed post-frame sleep, approximating 60 Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// Setup errors returned by Init, Run and Start.
var (
	ErrNilSurface         = errors.New("scenegraph: surface and metrics are required")
	ErrInvalidSize        = errors.New("scenegraph: sizes must be positive")
	ErrAlreadyInitialized = errors.New("scenegraph: scene already initialized")
	ErrNotInitialized     = errors.New("scenegraph: scene not initialized")
	ErrAlreadyRunning     = errors.New("scenegraph: scene loop already running")
)

// Behavior is implemented by concrete scenes. Both hooks run on the loop
// goroutine.
type Behavior interface {
	// Ready is called once when the loop starts, before the first frame.
	Ready(s *Scene)
	// Update advances simulation state. It is called at the start of every frame.
	Update(s *Scene, now time.Time)
}

// TouchHandler is the optional touch capability of a Behavior. The matching
// hook is called at most once per frame with the latest touch sample.
type TouchHandler interface {
	TouchDown(pos Vec2)
	TouchUp(pos Vec2)
	TouchMove(pos Vec2)
}

// BehaviorFuncs adapts plain functions to Behavior and TouchHandler.
// Nil fields are no-ops.
type BehaviorFuncs struct {
	OnReady     func(s *Scene)
	OnUpdate    func(s *Scene, now time.Time)
	OnTouchDown func(pos Vec2)
	OnTouchUp   func(pos Vec2)
	OnTouchMove func(pos Vec2)
}

func (f *BehaviorFuncs) Ready(s *Scene) {
	if f.OnReady != nil {
		f.OnReady(s)
	}
}

func (f *BehaviorFuncs) Update(s *Scene, now time.Time) {
	if f.OnUpdate != nil {
		f.OnUpdate(s, now)
	}
}

func (f *BehaviorFuncs) TouchDown(pos Vec2) {
	if f.OnTouchDown != nil {
		f.OnTouchDown(pos)
	}
}

func (f *BehaviorFuncs) TouchUp(pos Vec2) {
	if f.OnTouchUp != nil {
		f.OnTouchUp(pos)
	}
}

func (f *BehaviorFuncs) TouchMove(pos Vec2) {
	if f.OnTouchMove != nil {
		f.OnTouchMove(pos)
	}
}

// Scene is the root owner of the live node set and the frame loop driver.
//
// The live set and the pending queues belong to the loop goroutine. Touch and
// SetEnabled are the only methods safe to call from other goroutines while
// the loop runs.
type Scene struct {
	// BackgroundColor fills each frame before any node renders.
	BackgroundColor Color
	// FrameInterval is the fixed sleep after each frame.
	FrameInterval time.Duration
	// ShowOverlay draws the corner markers and the FPS/node-count text.
	ShowOverlay bool

	behavior Behavior
	touch    TouchHandler
	debug    atomic.Bool

	// Geometry, fixed by Init
	surface     Surface
	baseSize    Size
	size        Size
	scale       Size
	initialized bool

	// Tree state (loop goroutine only)
	children      []*Node
	pendingAdd    []*Node
	pendingRemove []*Node

	// Input
	mailbox touchMailbox

	// Render state
	order renderOrder
	fps   fpsCounter

	// Loop state
	enabled atomic.Bool
	running atomic.Bool
	wg      sync.WaitGroup
	frames  atomic.Uint64
	skipped atomic.Uint64
	now     func() time.Time
	sleep   func(time.Duration)
}

// NewScene creates a scene driven by b. The scene must be initialized with
// Init before its loop runs.
func NewScene(b Behavior) *Scene {
	if b == nil {
		b = &BehaviorFuncs{}
	}
	s := &Scene{
		BackgroundColor: ColorBlack,
		FrameInterval:   DefaultFrameInterval,
		ShowOverlay:     true,
		behavior:        b,
		now:             time.Now,
		sleep:           time.Sleep,
	}
	s.touch, _ = b.(TouchHandler)
	return s
}

// Init computes the scale from the physical screen size to base, derives the
// logical size, and fixes the surface to that size. It must be called exactly
// once, before Run or Start.
func (s *Scene) Init(base Size, surface Surface, metrics ScreenMetrics) error {
	if s.initialized {
		return ErrAlreadyInitialized
	}
	if surface == nil || metrics == nil {
		return ErrNilSurface
	}
	if base.W <= 0 || base.H <= 0 {
		return ErrInvalidSize
	}
	pw, ph := metrics.PhysicalSize()
	if pw <= 0 || ph <= 0 {
		return ErrInvalidSize
	}

	s.baseSize = base
	s.scale = Size{W: float64(pw) / base.W, H: float64(ph) / base.H}
	s.size = Size{W: float64(pw) / s.scale.W, H: float64(ph) / s.scale.H}
	s.surface = surface
	surface.SetFixedSize(int(s.size.W), int(s.size.H))
	s.initialized = true

	Logger().Info("scene initialized",
		"base", base.String(), "scale", s.scale.String(), "size", s.size.String(),
		"physicalW", pw, "physicalH", ph)
	return nil
}

// Size returns the logical size the surface is fixed to.
func (s *Scene) Size() Size {
	return s.size
}

// BaseSize returns the design-time size passed to Init.
func (s *Scene) BaseSize() Size {
	return s.baseSize
}

// Scale returns the per-axis physical/base ratio.
func (s *Scene) Scale() Size {
	return s.scale
}

// Behavior returns the scene's behavior.
func (s *Scene) Behavior() Behavior {
	return s.behavior
}

// Children returns the live node set in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (s *Scene) Children() []*Node {
	return s.children
}

// NumChildren returns the number of live nodes.
func (s *Scene) NumChildren() int {
	return len(s.children)
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame phase
// timings are logged at debug level and oversized node sets are reported.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug.Store(enabled)
	globalDebug.Store(enabled)
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which may lack a Scene pointer) can check it cheaply.
var globalDebug atomic.Bool

// --- Deferred mutation ---

// AddChild attaches node and its immediate children to the scene. The nodes
// join the live set at the next reconciliation. Grandchildren are not queued.
func (s *Scene) AddChild(node *Node) {
	if node == nil {
		panic("scenegraph: cannot add nil node")
	}
	node.scene = s
	s.pendingAdd = append(s.pendingAdd, node)
	for _, child := range node.children {
		child.scene = s
		s.pendingAdd = append(s.pendingAdd, child)
	}
}

// RemoveChild queues node and its immediate children for removal at the next
// reconciliation. Scene links are cleared only then. Queuing a node that is
// not live is harmless.
func (s *Scene) RemoveChild(node *Node) {
	if node == nil {
		return
	}
	s.pendingRemove = append(s.pendingRemove, node)
	s.pendingRemove = append(s.pendingRemove, node.children...)
}

// RemoveChildren queues every node in nodes, as RemoveChild does.
func (s *Scene) RemoveChildren(nodes []*Node) {
	for _, node := range nodes {
		s.RemoveChild(node)
	}
}

// reconcile applies queued removals, then queued additions, and empties both
// queues in place.
func (s *Scene) reconcile() {
	for i, node := range s.pendingRemove {
		s.children = removeNode(s.children, node)
		node.scene = nil
		s.pendingRemove[i] = nil
	}
	s.pendingRemove = s.pendingRemove[:0]

	// A node removed and re-added within one frame stays live, so the owner
	// link is restored here.
	for _, node := range s.pendingAdd {
		node.scene = s
	}
	s.children = append(s.children, s.pendingAdd...)
	clear(s.pendingAdd)
	s.pendingAdd = s.pendingAdd[:0]

	if s.debug.Load() {
		debugCheckChildCount("scene", len(s.children))
	}
}

// setClock replaces the time source and the inter-frame sleep.
func (s *Scene) setClock(now func() time.Time, sleep func(time.Duration)) {
	s.now = now
	s.sleep = sleep
}
