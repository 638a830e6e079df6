package geocode

import (
	"context"
	"errors"

	"github.com/communitycal/events-api/pkg/geo"
)

// Result one resolved place from the geocoding provider
type Result struct {
	Lat, Lon    float64
	Class       string
	DisplayName string
	Address     map[string]interface{}
	GeoJSON     *geo.Geometry
}

// ErrNoResult returned when the provider resolves nothing for the query
var ErrNoResult = errors.New("geocode: no result for query")

// Geocoder abstraction for forward geocoding
type Geocoder interface {
	Search(ctx context.Context, query string) (*Result, error)
}

// HasArea report whether the result carries a polygonal boundary
func (r *Result) HasArea() bool {
	return r != nil && r.GeoJSON.IsArea()
}

// IsPlace report whether the result class is usable as a place filter
func (r *Result) IsPlace() bool {
	return r != nil && (r.Class == "place" || r.Class == "boundary")
}
