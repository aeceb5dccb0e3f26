package ephemeral

import (
	"context"
	"sync"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/ports"
)

// Store keeps the memory document in process memory only. It backs the
// degrade path when the file store is unavailable: runs keep their memory
// for the life of the process and lose it on exit.
type Store struct {
	mu     sync.RWMutex
	memory domain.Memory
	loaded bool
}

var _ ports.ContextRepository = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(ctx context.Context) (domain.Memory, error) {
	if err := ctx.Err(); err != nil {
		return domain.Memory{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return domain.Memory{}, nil
	}

	memory := s.memory
	memory.SharedState = s.memory.SharedState.Clone()

	return memory, nil
}

func (s *Store) Save(ctx context.Context, memory domain.Memory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	memory.SharedState = memory.SharedState.Clone()
	s.memory = memory
	s.loaded = true

	return nil
}
