package scenegraph

import (
	"time"
)

// debugStats holds per-frame phase timings and counts.
// Only populated in debug mode.
type debugStats struct {
	updateTime    time.Duration
	reconcileTime time.Duration
	dispatchTime  time.Duration
	renderTime    time.Duration
	presentTime   time.Duration
	nodeCount     int
	drawCount     int
}

func (st debugStats) total() time.Duration {
	return st.updateTime + st.reconcileTime + st.dispatchTime + st.renderTime + st.presentTime
}

// debugLog reports frame timings at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug.Load() {
		return
	}
	Logger().Debug("frame",
		"update", stats.updateTime,
		"reconcile", stats.reconcileTime,
		"dispatch", stats.dispatchTime,
		"render", stats.renderTime,
		"present", stats.presentTime,
		"total", stats.total(),
		"nodes", stats.nodeCount,
		"drawn", stats.drawCount,
		"touchDrops", s.mailbox.drops.Load(),
	)
}

// debugMaxChildCount is the child count above which debug mode warns.
const debugMaxChildCount = 1000

// debugCheckChildCount warns when a node or the scene holds more than
// debugMaxChildCount children.
func debugCheckChildCount(name string, count int) {
	if count > debugMaxChildCount {
		Logger().Warn("child count over threshold",
			"node", name, "children", count, "threshold", debugMaxChildCount)
	}
}
