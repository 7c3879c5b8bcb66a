// backend/models/api_models.go
package models

// FilterRoutesResponse is the payload of POST /api/routes/filter.
type FilterRoutesResponse struct {
	Routes  []Route `json:"routes"`
	Total   int     `json:"total"`
	Limited bool    `json:"limited"`
}

// GradeInfo is one entry of GET /api/grades, in ascending difficulty order.
// The color fields are UI hints so clients need no duplicate grade table.
type GradeInfo struct {
	Label      string `json:"label"`
	Numeric    int    `json:"numeric"`
	ColorHex   string `json:"color_hex"`
	ColorClass string `json:"color_class"`
}

// PopularityBand maps a lower popularity bound to its display class.
type PopularityBand struct {
	Min   int    `json:"min"`
	Class string `json:"class"`
}

// GradesResponse is the payload of GET /api/grades: the full grade scale plus
// the popularity color bands.
type GradesResponse struct {
	Grades           []GradeInfo      `json:"grades"`
	PopularityColors []PopularityBand `json:"popularity_colors"`
}

// ToggleProjectRequest is the body of POST /api/projects/toggle.
type ToggleProjectRequest struct {
	ID string `json:"id"` // bleau_info_id
}

// ProjectsResponse lists the bookmarked ids and their resolved routes.
type ProjectsResponse struct {
	IDs    []string `json:"ids"`
	Routes []Route  `json:"routes"`
	Added  *bool    `json:"added,omitempty"` // set on toggle responses
}
