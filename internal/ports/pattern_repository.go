package ports

import (
	"context"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

type PatternRepository interface {
	List(ctx context.Context) ([]domain.PatternEntry, error)
	Save(ctx context.Context, pattern domain.PatternEntry) error
}
