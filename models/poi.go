// backend/models/poi.go
package models

// ParkingInfo is the single nearest parking record for an area, read from
// boolder.db. JSON field names follow the database column names.
type ParkingInfo struct {
	ParkingName       string `json:"parking_name"`
	GoogleURL         string `json:"google_url"`
	DistanceInMinutes int    `json:"distance_in_minutes"`
	Transport         string `json:"transport"`
}

// TopoPoint is one point of a route line overlay, in topo image coordinates.
type TopoPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TopoInfo describes the topo image for a route and, when available, the
// decoded line coordinates drawn over it.
type TopoInfo struct {
	TopoID      int         `json:"topo_id"`
	Coordinates []TopoPoint `json:"coordinates"` // nil when the row has none
	ImageURL    string      `json:"image_url"`
}
