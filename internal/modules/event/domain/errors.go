package domain

import (
	"net/http"

	"github.com/communitycal/events-api/pkg/shared"
)

var (
	// ErrConflictingFilters more than one discriminating feed parameter
	ErrConflictingFilters = shared.NewAPIError(http.StatusBadRequest, "Only one of 'group', 'geo', 'id', or 'tag' parameters can be used")
	// ErrMissingFilter parameters present but none recognized
	ErrMissingFilter = shared.NewAPIError(http.StatusBadRequest, "Missing required 'group', 'geo', 'id', or 'tag' parameter")
	// ErrInvalidGeoData geocoder gave no polygonal boundary for the query
	ErrInvalidGeoData = shared.NewAPIError(http.StatusBadRequest, "Invalid Geo Data")
	// ErrNoEventsFound nothing inside the resolved boundary
	ErrNoEventsFound = shared.NewAPIError(http.StatusNotFound, "No events found")

	// ErrLocationRequired missing location parameter
	ErrLocationRequired = shared.NewAPIError(http.StatusBadRequest, "Location parameter is required")
	// ErrLocationUnresolved location did not resolve to a usable place boundary
	ErrLocationUnresolved = shared.NewAPIError(http.StatusNotFound, "No usable location data found")

	// ErrEventNotFound event missing or not visible to the caller
	ErrEventNotFound = shared.NewAPIError(http.StatusNotFound, "Event not found")
	// ErrForbidden caller may not mutate events of this group
	ErrForbidden = shared.NewAPIError(http.StatusForbidden, "Forbidden")
	// ErrInvalidGroup group reference is not a valid id
	ErrInvalidGroup = shared.NewAPIError(http.StatusBadRequest, "Invalid group reference")
)
