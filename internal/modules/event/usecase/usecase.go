package usecase

import (
	"context"

	"github.com/communitycal/events-api/internal/modules/event/domain"
	"github.com/communitycal/events-api/pkg/shared"
)

// EventUsecase abstraction
type EventUsecase interface {
	CalendarFeed(ctx context.Context, query *domain.CalendarQuery) ([]byte, error)
	UpcomingInPlace(ctx context.Context, location string) ([]domain.GeoEventView, error)
	FindAll(ctx context.Context, filter *domain.EventFilter) ([]domain.Event, shared.Meta, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, payload *domain.Payload) (*domain.Event, error)
	Update(ctx context.Context, id string, payload *domain.Payload) (*domain.Event, error)
}
