package scenegraph

import (
	"sync/atomic"
	"time"
)

// fpsCounter reports the instantaneous frame rate, 1 / (time since the
// previous rendered frame), truncated to an integer.
type fpsCounter struct {
	last time.Time
	fps  atomic.Int64 // read by FPS from any goroutine
}

// tick records a rendered frame at now and returns the instantaneous rate.
// The first call, and any call with a non-positive delta, reports 0.
func (c *fpsCounter) tick(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
		c.fps.Store(0)
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	fps := 0
	if dt > 0 {
		fps = int(1 / dt)
	}
	c.fps.Store(int64(fps))
	return fps
}

// FPS returns the rate measured at the most recent rendered frame.
func (s *Scene) FPS() int {
	return int(s.fps.fps.Load())
}
