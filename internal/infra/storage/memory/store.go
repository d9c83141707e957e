package memory

import (
	"context"
	"sync"

	"github.com/DocFacilBR/doc-scheduler/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store é uma implementação em memória de storage.Store, usada em testes.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

func NewStore() *Store {
	return &Store{
		collections: make(map[string][]byte),
	}
}

func (s *Store) Load(_ context.Context, collection string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *Store) Save(_ context.Context, collection string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.collections[collection] = stored
	return nil
}
