package ports

import (
	"context"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

// MemoryFile moves the memory document to and from caller-given paths, used
// by the export/import commands.
type MemoryFile interface {
	Export(ctx context.Context, path string, memory domain.Memory) error
	Import(ctx context.Context, path string) (domain.Memory, error)
}
