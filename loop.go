package scenegraph

import (
	"time"
)

// SetEnabled sets the loop flag. Clearing it lets the in-flight frame finish
// and then stops the loop. Safe to call from any goroutine.
func (s *Scene) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

// Enabled reports the loop flag.
func (s *Scene) Enabled() bool {
	return s.enabled.Load()
}

// Running reports whether Run is executing.
func (s *Scene) Running() bool {
	return s.running.Load()
}

// Frames returns the number of frames presented so far.
func (s *Scene) Frames() uint64 {
	return s.frames.Load()
}

// SkippedFrames returns the number of frames whose render was skipped because
// the surface had no buffer available.
func (s *Scene) SkippedFrames() uint64 {
	return s.skipped.Load()
}

// Run drives the frame loop on the calling goroutine until the enabled flag
// is cleared. Behavior.Ready is called once before the first frame. The flag
// is not set by Run; use Start, or call SetEnabled(true) first.
func (s *Scene) Run() error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	s.loop()
	return nil
}

// Start sets the enabled flag and runs the loop on a new goroutine. The
// running state is claimed before Start returns, so a concurrent Start or Run
// gets ErrAlreadyRunning.
func (s *Scene) Start() error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	s.enabled.Store(true)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return nil
}

// loop runs Ready and the frames. The caller must have claimed running.
func (s *Scene) loop() {
	defer s.running.Store(false)

	Logger().Debug("scene loop starting")
	s.behavior.Ready(s)
	for s.enabled.Load() {
		s.frame()
		s.sleep(s.FrameInterval)
	}
	Logger().Debug("scene loop stopped", "frames", s.frames.Load(), "skipped", s.skipped.Load())
}

// Stop clears the enabled flag and waits for a loop started with Start to
// exit. Must not be called from the loop goroutine.
func (s *Scene) Stop() {
	s.enabled.Store(false)
	s.wg.Wait()
}

// frame runs one iteration: update, reconcile, touch dispatch, render.
func (s *Scene) frame() {
	var stats debugStats
	var t0 time.Time
	debug := s.debug.Load()

	now := s.now()
	if debug {
		t0 = time.Now()
	}

	s.behavior.Update(s, now)

	if debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	s.reconcile()

	if debug {
		stats.reconcileTime = time.Since(t0)
		t0 = time.Now()
	}

	s.dispatchTouch()

	if debug {
		stats.dispatchTime = time.Since(t0)
		t0 = time.Now()
	}

	fb, ok := s.surface.LockFrame()
	if !ok {
		s.skipped.Add(1)
		if debug {
			Logger().Debug("surface unavailable, frame skipped")
		}
		return
	}
	fb.Clear(s.BackgroundColor)
	s.render(fb, now)

	if debug {
		stats.renderTime = time.Since(t0)
		stats.nodeCount = len(s.children)
		stats.drawCount = s.order.drawn
		t0 = time.Now()
	}

	s.surface.UnlockAndPresent(fb)
	s.frames.Add(1)

	if debug {
		stats.presentTime = time.Since(t0)
		s.debugLog(stats)
	}
}
