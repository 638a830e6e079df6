package usecase

import (
	"context"

	"github.com/communitycal/events-api/internal/modules/tag/domain"
)

// TagUsecase abstraction
type TagUsecase interface {
	FindAll(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, payload *domain.Payload) (*domain.Tag, error)
}
