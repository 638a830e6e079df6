package interfaces

import (
	"context"

	"github.com/communitycal/events-api/internal/modules/tag/domain"
)

// TagRepository abstraction
type TagRepository interface {
	FindAll(ctx context.Context) ([]domain.Tag, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	Save(ctx context.Context, tag *domain.Tag) error
}
