// backend/models/route.go
package models

// Route is a single catalogued boulder problem. The full collection is loaded
// once at startup from routes.json (or routes.csv) and is read-only for the
// lifetime of the process.
//
// GradeNumeric is not present in the source document; it is derived from Grade
// by the grades package at load time and never mutated independently.
type Route struct {
	ID           int     `json:"id" csv:"id"`
	Name         string  `json:"name" csv:"name"`
	Grade        string  `json:"grade" csv:"grade"`
	GradeNumeric int     `json:"grade_numeric" csv:"-"`
	Latitude     float64 `json:"latitude" csv:"latitude"`
	Longitude    float64 `json:"longitude" csv:"longitude"`
	Steepness    string  `json:"steepness" csv:"steepness"`
	SitStart     int     `json:"sit_start" csv:"sit_start"` // 1 = sit start, 0 = standing
	AreaID       int     `json:"area_id" csv:"area_id"`
	AreaName     string  `json:"area_name" csv:"area_name"`
	BleauInfoID  string  `json:"bleau_info_id" csv:"bleau_info_id"`     // de facto bookmark key; may be empty
	Popularity   int     `json:"popularity,omitempty" csv:"popularity"` // 0-100, absent treated as 0
}

// SitStart filter values.
const (
	SitStartAll      = "all"
	SitStartSitOnly  = "sit"
	SitStartStanding = "standing"
)

// FilterState mirrors the persisted client filter panel state. It is always
// applied as a whole; malformed or missing fields degrade to permissive
// defaults rather than erroring.
type FilterState struct {
	GradeRange      [2]int   `json:"gradeRange"`
	Steepness       []string `json:"steepness"` // empty = no restriction
	Areas           []string `json:"areas"`     // empty = no restriction
	SitStart        string   `json:"sitStart"`  // all | sit | standing
	PopularityRange [2]int   `json:"popularityRange"`
	Search          string   `json:"search"`
}
