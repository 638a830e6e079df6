package usecase

import (
	"context"

	"github.com/communitycal/events-api/internal/access"
	"github.com/communitycal/events-api/internal/modules/group/domain"
	"github.com/communitycal/events-api/pkg/shared"
)

// GroupUsecase abstraction
type GroupUsecase interface {
	FindAll(ctx context.Context, filter *shared.Filter) ([]domain.Group, shared.Meta, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Group, error)
	Create(ctx context.Context, payload *domain.Payload) (*domain.Group, error)
	ValidateAPIKey(ctx context.Context, apiKey string) (*access.Identity, error)
}
