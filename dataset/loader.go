// backend/dataset/loader.go
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/Thimm/bleau-backend/grades"
	"github.com/Thimm/bleau-backend/models"
)

// Store holds the full route collection and area features for the session.
// Everything is loaded once at startup and treated as immutable read-only
// state from then on, so concurrent readers need no locking.
type Store struct {
	routes    []models.Route
	byID      map[int]models.Route
	areas     models.AreasData
	areaNames []string
}

// Load reads the route document (JSON array or CSV, chosen by extension) and
// the areas GeoJSON document, computes grade_numeric for every route, and
// returns the immutable store.
func Load(routesPath, areasPath string) (*Store, error) {
	routes, err := loadRoutes(routesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load routes from %s: %w", routesPath, err)
	}

	areas, err := loadAreas(areasPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load areas from %s: %w", areasPath, err)
	}

	byID := make(map[int]models.Route, len(routes))
	nameSet := make(map[string]struct{})
	for _, r := range routes {
		byID[r.ID] = r
		if r.AreaName != "" {
			nameSet[r.AreaName] = struct{}{}
		}
	}
	areaNames := make([]string, 0, len(nameSet))
	for name := range nameSet {
		areaNames = append(areaNames, name)
	}
	sort.Strings(areaNames)

	log.Printf("Dataset: Loaded %d routes across %d areas (%d area features).\n",
		len(routes), len(areaNames), len(areas.Features))

	return &Store{routes: routes, byID: byID, areas: areas, areaNames: areaNames}, nil
}

func loadRoutes(path string) ([]models.Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var routes []models.Route
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		routes, err = ParseRoutesCSV(f)
	default:
		routes, err = ParseRoutesJSON(f)
	}
	if err != nil {
		return nil, err
	}

	// grade_numeric is never present in the source document; derive it here,
	// exactly once.
	for i := range routes {
		routes[i].GradeNumeric = grades.ToNumeric(routes[i].Grade)
	}
	return routes, nil
}

// ParseRoutesJSON decodes a JSON array of routes.
func ParseRoutesJSON(r io.Reader) ([]models.Route, error) {
	var routes []models.Route
	if err := json.NewDecoder(r).Decode(&routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes JSON: %w", err)
	}
	return routes, nil
}

// ParseRoutesCSV decodes routes from CSV using the csv tags on models.Route.
// The header line must match the tags exactly.
func ParseRoutesCSV(r io.Reader) ([]models.Route, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read routes CSV: %w", err)
	}
	var routes []models.Route
	if err := csvutil.Unmarshal(data, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes CSV: %w", err)
	}
	return routes, nil
}

func loadAreas(path string) (models.AreasData, error) {
	var areas models.AreasData

	f, err := os.Open(path)
	if err != nil {
		return areas, err
	}
	defer f.Close()

	var raw models.AreasData
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return areas, fmt.Errorf("failed to decode areas GeoJSON: %w", err)
	}
	if raw.Type != "FeatureCollection" {
		return areas, fmt.Errorf("unexpected GeoJSON document type %q", raw.Type)
	}

	areas.Type = raw.Type
	for _, feature := range raw.Features {
		if err := feature.Validate(); err != nil {
			log.Printf("WARN Dataset: Skipping invalid area feature: %v", err)
			continue
		}
		areas.Features = append(areas.Features, feature)
	}
	return areas, nil
}

// Routes returns the full collection. Callers must not mutate it.
func (s *Store) Routes() []models.Route {
	return s.routes
}

// RouteByID looks a route up by its numeric id.
func (s *Store) RouteByID(id int) (models.Route, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Areas returns the validated area feature collection.
func (s *Store) Areas() models.AreasData {
	return s.areas
}

// AreaNames returns the sorted, de-duplicated area names present in the route
// collection, for populating the area filter control.
func (s *Store) AreaNames() []string {
	return s.areaNames
}
