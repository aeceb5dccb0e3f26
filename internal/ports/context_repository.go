package ports

import (
	"context"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

type ContextRepository interface {
	Load(ctx context.Context) (domain.Memory, error)
	Save(ctx context.Context, memory domain.Memory) error
}
