package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/communitycal/events-api/pkg/shared"
)

// EventFilter query model translated by the repository into a store query
type EventFilter struct {
	shared.Filter

	IDs             []primitive.ObjectID
	GroupSlugs      []string
	TagSlugs        []string
	Status          string
	ExcludeDrafts   bool
	VisibleToGroups []primitive.ObjectID // published events plus any event of these groups
	WithCoordinates bool
	EndAfter        *time.Time
	SortByStart     bool
}

// CalendarQuery discriminating parameters of the calendar feed endpoint
type CalendarQuery struct {
	Group, Geo, ID, Tag string

	// HasParams true when the request carried any query parameter
	HasParams bool
}

// ActiveFilter single active filter name and value.
// More than one filter set, or parameters without any known filter, is an error.
func (q *CalendarQuery) ActiveFilter() (name, value string, err error) {
	active := 0
	for _, candidate := range []struct{ name, value string }{
		{"group", q.Group}, {"geo", q.Geo}, {"id", q.ID}, {"tag", q.Tag},
	} {
		if candidate.value != "" {
			active++
			name, value = candidate.name, candidate.value
		}
	}

	if active > 1 {
		return "", "", ErrConflictingFilters
	}
	if active == 0 {
		if q.HasParams {
			return "", "", ErrMissingFilter
		}
		return "", "", nil
	}
	return name, value, nil
}

// CacheKey response cache key of the feed request
func (q *CalendarQuery) CacheKey() string {
	for _, value := range []string{q.Group, q.Geo, q.ID, q.Tag} {
		if value != "" {
			return "events_" + value
		}
	}
	return "events_all"
}
