package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/ports"
)

// ContextStore holds the process-lifetime memory: shared state, the
// append-only interaction log and persisted pattern counters. When enabled it
// loads from the repository at construction and saves after every recording
// command; persistence failures degrade to in-process memory, never fatal.
type ContextStore struct {
	repo    ports.ContextRepository
	enabled bool
	memory  domain.Memory
	logger  *zap.Logger
}

func NewContextStore(ctx context.Context, repo ports.ContextRepository, enabled bool, logger *zap.Logger) *ContextStore {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &ContextStore{
		repo:    repo,
		enabled: enabled,
		memory:  domain.NewMemory(domain.SessionID(uuid.NewString())),
		logger:  logger,
	}

	if !enabled || repo == nil {
		return s
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("load memory failed, continuing without persisted memory",
			zap.Error(err))
		return s
	}

	if loaded.SessionID != "" {
		s.memory.SessionID = loaded.SessionID
	}
	s.memory.Absorb(loaded)

	return s
}

func (s *ContextStore) SessionID() domain.SessionID {
	return s.memory.SessionID
}

// Memory returns a snapshot of the current memory document.
func (s *ContextStore) Memory() domain.Memory {
	snapshot := s.memory
	snapshot.SharedState = s.memory.SharedState.Clone()

	return snapshot
}

// State exposes the live shared-state mapping for agent reads.
func (s *ContextStore) State() domain.SharedState {
	return s.memory.SharedState.Clone()
}

// Append adds a record to the interaction log.
func (s *ContextStore) Append(record domain.InteractionRecord) {
	s.memory.Append(record)
}

// MergeState folds agent-written state into the store, last write wins.
func (s *ContextStore) MergeState(state domain.SharedState) {
	if len(state) == 0 {
		return
	}
	if s.memory.SharedState == nil {
		s.memory.SharedState = make(domain.SharedState, len(state))
	}
	s.memory.SharedState.Merge(state)
}

// Absorb merges an imported memory document into the store.
func (s *ContextStore) Absorb(other domain.Memory) {
	s.memory.Absorb(other)
}

// Clear drops the log, shared state and pattern counters.
func (s *ContextStore) Clear() {
	s.memory.Clear()
}

// Persist writes the memory document, carrying the given pattern counters.
// Failures are logged and swallowed so execution continues without memory.
func (s *ContextStore) Persist(ctx context.Context, patternStats map[domain.PatternName]domain.PatternStats) {
	if !s.enabled || s.repo == nil {
		return
	}

	s.memory.PatternMemory = patternStats

	if err := s.repo.Save(ctx, s.memory); err != nil {
		s.logger.Warn("save memory failed, continuing without persistence",
			zap.Error(err))
	}
}
