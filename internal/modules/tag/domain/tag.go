package domain

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/communitycal/events-api/pkg/shared"
)

// Tag data, stored in the tags collection
type Tag struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"`
	CreatedBy  string             `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt time.Time          `bson:"modified_at" json:"modifiedAt"`
}

// Payload write model
type Payload struct {
	Title string `json:"title" validate:"required"`
	Slug  string `json:"slug" validate:"required"`
}

var (
	// ErrInvalidSlug slug must be lowercase alphanumeric segments joined by single hyphens
	ErrInvalidSlug = shared.NewAPIError(http.StatusBadRequest, "Invalid slug format")
	// ErrSlugTaken slug already in use
	ErrSlugTaken = shared.NewAPIError(http.StatusConflict, "Slug already in use")
	// ErrForbidden only admins manage tags
	ErrForbidden = shared.NewAPIError(http.StatusForbidden, "Forbidden")
)
