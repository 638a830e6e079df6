package domain

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/communitycal/events-api/pkg/shared"
)

// Group data, stored in the groups collection.
// The api key is the write credential of the group's editors and never leaves the api.
type Group struct {
	ID              primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Title           string                 `bson:"title" json:"title"`
	Slug            string                 `bson:"slug" json:"slug"`
	Description     string                 `bson:"description,omitempty" json:"description,omitempty"`
	Location        string                 `bson:"location,omitempty" json:"location,omitempty"`
	Address         map[string]interface{} `bson:"address,omitempty" json:"address,omitempty"`
	Coordinates     []float64              `bson:"coordinates,omitempty" json:"coordinates,omitempty"` // [lon, lat]
	EnableAutoPosts bool                   `bson:"enable_auto_posts" json:"enableAutoPosts"`
	APIKey          string                 `bson:"api_key,omitempty" json:"-"`
	CreatedBy       string                 `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt       time.Time              `bson:"created_at" json:"createdAt"`
	ModifiedAt      time.Time              `bson:"modified_at" json:"modifiedAt"`
}

// Payload write model
type Payload struct {
	Title           string `json:"title" validate:"required"`
	Slug            string `json:"slug" validate:"required"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	EnableAutoPosts bool   `json:"enableAutoPosts"`
}

var (
	// ErrGroupNotFound unknown slug
	ErrGroupNotFound = shared.NewAPIError(http.StatusNotFound, "Group not found")
	// ErrInvalidSlug slug must be lowercase alphanumeric segments joined by single hyphens
	ErrInvalidSlug = shared.NewAPIError(http.StatusBadRequest, "Invalid slug format")
	// ErrSlugTaken slug already in use
	ErrSlugTaken = shared.NewAPIError(http.StatusConflict, "Slug already in use")
	// ErrForbidden only admins manage groups
	ErrForbidden = shared.NewAPIError(http.StatusForbidden, "Forbidden")
	// ErrInvalidAPIKey unknown group api key
	ErrInvalidAPIKey = shared.NewAPIError(http.StatusUnauthorized, "Invalid api key")
)
