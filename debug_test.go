package scenegraph

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// captureLogs routes package logs at debug level into a buffer until the
// test ends.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDebugStatsTotal(t *testing.T) {
	st := debugStats{
		updateTime:    1 * time.Millisecond,
		reconcileTime: 2 * time.Millisecond,
		dispatchTime:  3 * time.Millisecond,
		renderTime:    4 * time.Millisecond,
		presentTime:   5 * time.Millisecond,
	}
	if st.total() != 15*time.Millisecond {
		t.Errorf("total = %v, want 15ms", st.total())
	}
}

func TestDebugLogOnlyInDebugMode(t *testing.T) {
	buf := captureLogs(t)
	s, _ := newTestScene(t, nil)
	t.Cleanup(func() { s.SetDebugMode(false) })

	s.frame()
	if strings.Contains(buf.String(), "msg=frame") {
		t.Error("frame timings logged outside debug mode")
	}

	s.SetDebugMode(true)
	s.AddChild(NewNode("a"))
	s.frame()
	out := buf.String()
	if !strings.Contains(out, "msg=frame") || !strings.Contains(out, "nodes=1") {
		t.Errorf("debug frame log missing, got:\n%s", out)
	}
}

func TestDebugCheckChildCount(t *testing.T) {
	buf := captureLogs(t)

	debugCheckChildCount("small", debugMaxChildCount)
	if buf.Len() != 0 {
		t.Errorf("unexpected warning: %s", buf.String())
	}
	debugCheckChildCount("big", debugMaxChildCount+1)
	if !strings.Contains(buf.String(), "child count over threshold") || !strings.Contains(buf.String(), "node=big") {
		t.Errorf("missing warning, got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}
