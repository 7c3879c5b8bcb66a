// backend/models/areas.go
package models

import "fmt"

// AreaProperties is the validated property bag of one area feature. The bounds
// are kept as strings, as the source document stores them.
type AreaProperties struct {
	Name         string `json:"name"`
	AreaID       int    `json:"areaId"`
	Priority     int    `json:"priority"`
	SouthWestLat string `json:"southWestLat"`
	SouthWestLon string `json:"southWestLon"`
	NorthEastLat string `json:"northEastLat"`
	NorthEastLon string `json:"northEastLon"`
}

type AreaGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // lon, lat
}

type AreaFeature struct {
	Type       string         `json:"type"`
	Geometry   AreaGeometry   `json:"geometry"`
	Properties AreaProperties `json:"properties"`
}

// Validate rejects features that do not carry the fields the map client
// depends on. Invalid features are skipped at load time, not served.
func (f AreaFeature) Validate() error {
	if f.Type != "Feature" {
		return fmt.Errorf("unexpected feature type %q", f.Type)
	}
	if f.Geometry.Type != "Point" {
		return fmt.Errorf("unexpected geometry type %q", f.Geometry.Type)
	}
	if f.Properties.Name == "" {
		return fmt.Errorf("feature has no area name")
	}
	if f.Properties.AreaID == 0 {
		return fmt.Errorf("feature %q has no areaId", f.Properties.Name)
	}
	return nil
}

// AreasData is the validated GeoJSON feature collection of climbing areas.
type AreasData struct {
	Type     string        `json:"type"`
	Features []AreaFeature `json:"features"`
}
