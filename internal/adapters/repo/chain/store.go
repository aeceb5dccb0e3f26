package chain

import (
	"context"
	"errors"
	"fmt"

	ephemeralstore "github.com/fusionkit/fusion-cli/internal/adapters/repo/ephemeral"
	jsonstore "github.com/fusionkit/fusion-cli/internal/adapters/repo/jsonfile"
	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/ports"
)

// Store chains a primary context repository with a fallback, so a failing
// memory file degrades to in-process memory instead of aborting the run.
type Store struct {
	primary  ports.ContextRepository
	fallback ports.ContextRepository
}

var _ ports.ContextRepository = (*Store)(nil)

var (
	errNilPrimaryRepository  = errors.New("primary context repository is nil")
	errNilFallbackRepository = errors.New("fallback context repository is nil")
)

func NewStore(primary ports.ContextRepository, fallback ports.ContextRepository) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.ContextRepository, fallback ports.ContextRepository) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryRepository
	}
	if fallback == nil {
		return nil, errNilFallbackRepository
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewFileFirstWithEphemeralFallback(path string) (*Store, error) {
	primary, err := jsonstore.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("wire memory file store: %w", err)
	}

	return NewStoreChecked(primary, ephemeralstore.NewStore())
}

func (s *Store) Load(ctx context.Context) (domain.Memory, error) {
	memory, err := s.primary.Load(ctx)
	if err == nil {
		return memory, nil
	}
	if shouldSkipFallback(err) {
		return domain.Memory{}, err
	}

	fallbackMemory, fallbackErr := s.fallback.Load(ctx)
	if fallbackErr == nil {
		return fallbackMemory, nil
	}

	return domain.Memory{}, fmt.Errorf("primary backend load failed: %w; fallback backend load failed: %w", err, fallbackErr)
}

func (s *Store) Save(ctx context.Context, memory domain.Memory) error {
	err := s.primary.Save(ctx, memory)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Save(ctx, memory)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend save failed: %w; fallback backend save failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
