// backend/services/route_service.go
package services

import (
	"fmt"

	"github.com/jszwec/csvutil"

	"github.com/Thimm/bleau-backend/dataset"
	"github.com/Thimm/bleau-backend/filter"
	"github.com/Thimm/bleau-backend/models"
)

// RouteService binds the immutable dataset store to the filter engine.
type RouteService struct {
	store *dataset.Store
	caps  filter.Caps
}

func NewRouteService(store *dataset.Store, caps filter.Caps) *RouteService {
	return &RouteService{store: store, caps: caps}
}

// All returns the full route collection.
func (s *RouteService) All() []models.Route {
	return s.store.Routes()
}

// Areas returns the validated area feature collection.
func (s *RouteService) Areas() models.AreasData {
	return s.store.Areas()
}

// Filter evaluates a filter state against the collection.
func (s *RouteService) Filter(spec models.FilterState) models.FilterRoutesResponse {
	res := filter.Evaluate(s.store.Routes(), spec, s.caps)
	routes := res.Displayed
	if routes == nil {
		routes = []models.Route{} // always an array in JSON
	}
	return models.FilterRoutesResponse{Routes: routes, Total: res.Total, Limited: res.Limited}
}

// ExportCSV renders a filter result as CSV, one row per displayed route,
// using the csv tags on models.Route.
func (s *RouteService) ExportCSV(spec models.FilterState) ([]byte, error) {
	res := filter.Evaluate(s.store.Routes(), spec, s.caps)
	data, err := csvutil.Marshal(res.Displayed)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal routes CSV: %w", err)
	}
	return data, nil
}
