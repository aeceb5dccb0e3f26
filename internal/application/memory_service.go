package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/patterns"
	"github.com/fusionkit/fusion-cli/internal/ports"
)

// MemoryService handles export, import and housekeeping of the context
// store's memory document.
type MemoryService struct {
	store    *ContextStore
	file     ports.MemoryFile
	registry *patterns.Registry
	logger   *zap.Logger
}

func NewMemoryService(store *ContextStore, file ports.MemoryFile, registry *patterns.Registry, logger *zap.Logger) *MemoryService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MemoryService{
		store:    store,
		file:     file,
		registry: registry,
		logger:   logger,
	}
}

// Export writes the current memory document to path.
func (s *MemoryService) Export(ctx context.Context, path string) error {
	memory := s.store.Memory()
	memory.PatternMemory = s.registry.StatsSnapshot()

	if err := s.file.Export(ctx, path, memory); err != nil {
		return fmt.Errorf("export memory: %w", err)
	}

	s.logger.Info("memory exported",
		zap.String("path", path),
		zap.Int("interactions", len(memory.Interactions)))

	return nil
}

// Import merges a memory document from path into the store: interactions are
// appended, shared state and pattern counters merged last-write-wins.
func (s *MemoryService) Import(ctx context.Context, path string) (domain.MemoryStats, error) {
	imported, err := s.file.Import(ctx, path)
	if err != nil {
		return domain.MemoryStats{}, fmt.Errorf("import memory: %w", err)
	}

	s.store.Absorb(imported)
	s.registry.SeedStats(imported.PatternMemory)
	s.store.Persist(ctx, s.registry.StatsSnapshot())

	s.logger.Info("memory imported",
		zap.String("path", path),
		zap.Int("interactions", len(imported.Interactions)))

	return s.store.Memory().Stats(), nil
}

// Clear drops the interaction log, shared state and pattern counters.
func (s *MemoryService) Clear(ctx context.Context) error {
	s.store.Clear()
	s.registry.ResetStats()
	s.store.Persist(ctx, s.registry.StatsSnapshot())

	s.logger.Info("memory cleared")

	return nil
}

// Stats summarizes the current memory document.
func (s *MemoryService) Stats() domain.MemoryStats {
	return s.store.Memory().Stats()
}

// Relevant returns up to limit recorded interactions whose prompt shares a
// word with query, newest first.
func (s *MemoryService) Relevant(query string, limit int) []domain.InteractionRecord {
	return s.store.Memory().Relevant(query, limit)
}
