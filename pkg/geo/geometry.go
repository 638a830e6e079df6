package geo

import (
	"encoding/json"
	"errors"
)

// Geometry geojson geometry, only area types are usable for containment checks
type Geometry struct {
	Type         string
	polygon      [][][]float64
	multiPolygon [][][][]float64
}

// ErrUnsupportedGeometry returned for non area geojson types
var ErrUnsupportedGeometry = errors.New("geo: geometry is not a Polygon or MultiPolygon")

// UnmarshalJSON decode geojson geometry object
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	g.Type = raw.Type
	switch raw.Type {
	case "Polygon":
		return json.Unmarshal(raw.Coordinates, &g.polygon)
	case "MultiPolygon":
		return json.Unmarshal(raw.Coordinates, &g.multiPolygon)
	}
	// non area types are kept for the caller to reject
	return nil
}

// IsArea report whether geometry supports containment
func (g *Geometry) IsArea() bool {
	if g == nil {
		return false
	}
	return g.Type == "Polygon" || g.Type == "MultiPolygon"
}

// Polygons all polygons of the geometry, each as a list of rings (exterior first)
func (g *Geometry) Polygons() [][][][]float64 {
	switch g.Type {
	case "Polygon":
		return [][][][]float64{g.polygon}
	case "MultiPolygon":
		return g.multiPolygon
	}
	return nil
}

// Coordinates raw coordinate structure, for building store level geometry filters
func (g *Geometry) Coordinates() interface{} {
	switch g.Type {
	case "Polygon":
		return g.polygon
	case "MultiPolygon":
		return g.multiPolygon
	}
	return nil
}
