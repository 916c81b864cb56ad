package save

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// testManager opens a throwaway gdata app, or returns nil when storage is not
// available in this environment.
func testManager(t *testing.T) (*gdata.Manager, string) {
	t.Helper()
	appName := fmt.Sprintf("scenegraph_save_test_%d", time.Now().UnixNano())
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, ""
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return m, appName
}

func TestMemoryOnlyStore(t *testing.T) {
	s := New(nil)
	if s.Best() != 0 {
		t.Errorf("Best = %d, want 0", s.Best())
	}
	improved, err := s.SaveBest(12)
	if err != nil || !improved {
		t.Fatalf("SaveBest(12) = %v, %v", improved, err)
	}
	improved, err = s.SaveBest(5)
	if err != nil || improved {
		t.Errorf("SaveBest(5) = %v, %v, want no improvement", improved, err)
	}
	if s.Best() != 12 {
		t.Errorf("Best = %d, want 12", s.Best())
	}
}

func TestPersistedStore(t *testing.T) {
	m, _ := testManager(t)
	if m == nil {
		t.Skip("gdata storage unavailable")
	}

	s := New(m)
	if _, err := s.SaveBest(42); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}

	reopened := New(m)
	if reopened.Best() != 42 {
		t.Errorf("Best after reload = %d, want 42", reopened.Best())
	}
}

func TestCorruptRecordFallsBackToZero(t *testing.T) {
	m, _ := testManager(t)
	if m == nil {
		t.Skip("gdata storage unavailable")
	}
	if err := m.SaveObjectProp(scoreObject, scoreProperty, []byte("best: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}
	s := New(m)
	if s.Best() != 0 {
		t.Errorf("Best = %d, want 0 for a corrupt record", s.Best())
	}
}
