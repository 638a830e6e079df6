package interfaces

import (
	"context"

	"github.com/communitycal/events-api/internal/modules/group/domain"
	"github.com/communitycal/events-api/pkg/shared"
)

// GroupRepository abstraction
type GroupRepository interface {
	FindAll(ctx context.Context, filter *shared.Filter) ([]domain.Group, error)
	Count(ctx context.Context) int
	FindBySlug(ctx context.Context, slug string) (*domain.Group, error)
	FindByAPIKey(ctx context.Context, apiKey string) (*domain.Group, error)
	Save(ctx context.Context, group *domain.Group) error
}
