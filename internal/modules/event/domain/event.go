package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/communitycal/events-api/pkg/helper"
)

// Event data, stored in the events collection
type Event struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Title       string                 `bson:"title" json:"title"`
	Description string                 `bson:"description" json:"description"`
	Start       time.Time              `bson:"start" json:"start"`
	End         time.Time              `bson:"end" json:"end"`
	Location    string                 `bson:"location" json:"location"`
	Address     map[string]interface{} `bson:"address,omitempty" json:"address,omitempty"`
	Coordinates []float64              `bson:"coordinates,omitempty" json:"coordinates,omitempty"` // [lon, lat]
	Organizer   string                 `bson:"organizer,omitempty" json:"organizer,omitempty"`
	GroupID     primitive.ObjectID     `bson:"group" json:"group"`
	TagIDs      []primitive.ObjectID   `bson:"tags,omitempty" json:"tags,omitempty"`
	Status      string                 `bson:"_status" json:"status"`
	CreatedBy   string                 `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time              `bson:"created_at" json:"createdAt"`
	ModifiedAt  time.Time              `bson:"modified_at" json:"modifiedAt"`
}

// IsDraft check status
func (e *Event) IsDraft() bool {
	return e.Status == helper.StatusDraft
}

// HasPoint check geocoded coordinates presence
func (e *Event) HasPoint() bool {
	return len(e.Coordinates) == 2
}

// GeoEventView event projection returned by the geo filter endpoint
type GeoEventView struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Start       time.Time              `json:"start"`
	End         time.Time              `json:"end"`
	Location    string                 `json:"location"`
	Address     map[string]interface{} `json:"address,omitempty"`
	Coordinates []float64              `json:"coordinates"`
}

// NewGeoEventView projection constructor
func NewGeoEventView(e *Event) GeoEventView {
	return GeoEventView{
		ID:          e.ID.Hex(),
		Title:       e.Title,
		Start:       e.Start,
		End:         e.End,
		Location:    e.Location,
		Address:     e.Address,
		Coordinates: e.Coordinates,
	}
}

// Payload write model for create and update
type Payload struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end" validate:"required"`
	Organizer   string    `json:"organizer"`
	Group       string    `json:"group" validate:"required"`
	Tags        []string  `json:"tags"`
	Status      string    `json:"status" validate:"omitempty,oneof=draft published"`
}
