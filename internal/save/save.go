// Package save persists the best score with gdata, which maps to the app data
// directory on desktop and to the app's private storage on Android.
package save

import (
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	scoreObject   = "scores"
	scoreProperty = "best"
)

// record is the YAML document stored under scores/best.
type record struct {
	Best int `yaml:"best"`
}

// ScoreStore keeps the best score in memory and mirrors it to gdata. A store
// without a gdata manager works in memory only.
type ScoreStore struct {
	mu      sync.Mutex
	manager *gdata.Manager // nil in memory-only mode
	best    int
}

// Open opens the gdata storage for appName and loads the stored score. When
// the storage cannot be opened the store falls back to memory-only mode and
// the error is returned alongside it.
func Open(appName string) (*ScoreStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return New(nil), fmt.Errorf("open score storage: %w", err)
	}
	return New(m), nil
}

// New creates a store over m, loading the stored score if present. A nil m
// gives a memory-only store.
func New(m *gdata.Manager) *ScoreStore {
	s := &ScoreStore{manager: m}
	if err := s.load(); err != nil {
		log.Printf("[ScoreStore] Warning: %v (starting from 0)", err)
	}
	return s
}

func (s *ScoreStore) load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return fmt.Errorf("load best score: %w", err)
	}
	var r record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("decode best score: %w", err)
	}
	s.best = r.Best
	return nil
}

// Best returns the best score seen so far.
func (s *ScoreStore) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

// SaveBest records score if it beats the current best and reports whether it
// did. The in-memory value is updated even when persisting fails.
func (s *ScoreStore) SaveBest(score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score <= s.best {
		return false, nil
	}
	s.best = score
	if s.manager == nil {
		return true, nil
	}
	data, err := yaml.Marshal(record{Best: score})
	if err != nil {
		return true, fmt.Errorf("encode best score: %w", err)
	}
	if err := s.manager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		return true, fmt.Errorf("save best score: %w", err)
	}
	return true, nil
}
