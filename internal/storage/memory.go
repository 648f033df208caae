package storage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemStore is an in-memory ObjectStore used in tests. Errors can be injected
// per operation to exercise failure paths.
type MemStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	GetErr     error
	PutErr     error
	PresignErr error

	// GetCalls counts Get invocations, used to assert cache behavior.
	GetCalls int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string][]byte)}
}

// Seed stores an object directly, bypassing error injection.
func (s *MemStore) Seed(key string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
}

// Get returns the object under key or a not-found error.
func (s *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GetCalls++
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	body, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}
	return body, nil
}

// Put stores body under key.
func (s *MemStore) Put(_ context.Context, key string, body []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return s.PutErr
	}
	cp := make([]byte, len(body))
	copy(cp, body)
	s.objects[key] = cp
	return nil
}

// PresignGet returns a fake URL embedding the key.
func (s *MemStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PresignErr != nil {
		return "", s.PresignErr
	}
	if _, ok := s.objects[key]; !ok {
		return "", fmt.Errorf("object %s not found", key)
	}
	return "memory://" + key, nil
}

// Object returns the stored bytes for key, if any.
func (s *MemStore) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.objects[key]
	return body, ok
}
