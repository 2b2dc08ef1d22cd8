package store

import (
	"sync"

	"tradeworker/internal/models"
)

// Memory — замена Pebble в тестах.
type Memory struct {
	mu  sync.Mutex
	h   models.Highlight
	set bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (s *Memory) Close() error { return nil }

func (s *Memory) SetHighlight(h models.Highlight) error {
	s.mu.Lock()
	s.h = h
	s.set = true
	s.mu.Unlock()
	return nil
}

func (s *Memory) Highlight() (models.Highlight, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h, s.set, nil
}
