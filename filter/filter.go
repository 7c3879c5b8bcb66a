// backend/filter/filter.go
package filter

import (
	"sort"
	"strings"

	"github.com/Thimm/bleau-backend/models"
)

// Caps bounds the displayed result size. Search results are expected to be
// narrow and precise, so their cap is materially larger than the filter cap,
// which protects rendering when broad filters match most of the collection.
type Caps struct {
	MaxDisplayRoutes int // filter mode
	MaxSearchResults int // search mode
}

// DefaultCaps matches the original client constants.
var DefaultCaps = Caps{MaxDisplayRoutes: 500, MaxSearchResults: 2000}

// Result of one filter evaluation.
type Result struct {
	Displayed []models.Route
	Total     int // matches before the display cap
	Limited   bool
}

// Evaluate computes the displayed route list for a filter state. Pure function
// of its inputs; the routes slice is never mutated.
//
// A non-empty search text puts the evaluation in search mode: a route matches
// iff its name contains the text case-insensitively, and every other filter
// field is ignored. With empty search text every structured predicate must
// hold (grade range, steepness set, area set, sit-start tri-state, popularity
// range; empty sets mean unrestricted).
//
// Matches are ranked by popularity descending with ascending route ID as the
// tie-break, then capped. In search mode, if some route's name equals the full
// search text case-insensitively, that route (lowest ID if several) is forced
// to the front of the displayed list, evicting the last entry when the list is
// at capacity, so an exact query always surfaces its target.
func Evaluate(routes []models.Route, spec models.FilterState, caps Caps) Result {
	if caps.MaxDisplayRoutes <= 0 {
		caps.MaxDisplayRoutes = DefaultCaps.MaxDisplayRoutes
	}
	if caps.MaxSearchResults <= 0 {
		caps.MaxSearchResults = DefaultCaps.MaxSearchResults
	}

	search := strings.ToLower(strings.TrimSpace(spec.Search))

	var matched []models.Route
	if search != "" {
		for _, r := range routes {
			if strings.Contains(strings.ToLower(r.Name), search) {
				matched = append(matched, r)
			}
		}
	} else {
		for _, r := range routes {
			if matchesFilters(r, spec) {
				matched = append(matched, r)
			}
		}
	}

	total := len(matched)

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Popularity != matched[j].Popularity {
			return matched[i].Popularity > matched[j].Popularity
		}
		return matched[i].ID < matched[j].ID
	})

	limit := caps.MaxDisplayRoutes
	if search != "" {
		limit = caps.MaxSearchResults
	}
	displayed := matched
	if len(displayed) > limit {
		displayed = displayed[:limit]
	}

	if search != "" {
		displayed = promoteExactMatch(matched, displayed, search, limit)
	}

	return Result{
		Displayed: displayed,
		Total:     total,
		Limited:   total > len(displayed),
	}
}

func matchesFilters(r models.Route, spec models.FilterState) bool {
	if r.GradeNumeric < spec.GradeRange[0] || r.GradeNumeric > spec.GradeRange[1] {
		return false
	}
	if len(spec.Steepness) > 0 && !contains(spec.Steepness, r.Steepness) {
		return false
	}
	if len(spec.Areas) > 0 && !contains(spec.Areas, r.AreaName) {
		return false
	}
	if spec.SitStart == models.SitStartSitOnly && r.SitStart != 1 {
		return false
	}
	if spec.SitStart == models.SitStartStanding && r.SitStart != 0 {
		return false
	}
	if r.Popularity < spec.PopularityRange[0] || r.Popularity > spec.PopularityRange[1] {
		return false
	}
	return true
}

// promoteExactMatch forces the exact-name match (lowest ID if several) to the
// front of the displayed list when truncation dropped it, evicting the last
// entry if the list is already at capacity. An exact match that made the cap
// on its own keeps its ranked position.
func promoteExactMatch(matched, displayed []models.Route, search string, limit int) []models.Route {
	var exact *models.Route
	for i := range matched {
		if strings.ToLower(matched[i].Name) == search {
			if exact == nil || matched[i].ID < exact.ID {
				exact = &matched[i]
			}
		}
	}
	if exact == nil {
		return displayed
	}
	for _, r := range displayed {
		if r.ID == exact.ID {
			return displayed
		}
	}

	out := make([]models.Route, 0, len(displayed)+1)
	out = append(out, *exact)
	out = append(out, displayed...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
