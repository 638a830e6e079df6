package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/communitycal/events-api/internal/modules/event/domain"
	"github.com/communitycal/events-api/pkg/geo"
)

// EventRepository abstraction
type EventRepository interface {
	Find(ctx context.Context, filter *domain.EventFilter) ([]domain.Event, error)
	Count(ctx context.Context, filter *domain.EventFilter) int
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Event, error)
	FindIDsWithinArea(ctx context.Context, geometry *geo.Geometry) ([]primitive.ObjectID, error)
	Save(ctx context.Context, event *domain.Event) error
}
