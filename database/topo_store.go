// backend/database/topo_store.go
package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Thimm/bleau-backend/models"
)

// GetTopoForRoute returns the topo line for a route, (nil, nil) when the
// route has no topo. topoAssetBaseURL is the proxy serving the topo images.
func (s *Store) GetTopoForRoute(routeID int, topoAssetBaseURL string) (*models.TopoInfo, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var (
		topoID      int
		coordinates sql.NullString
	)
	err := s.DB.QueryRow(`
		SELECT l.topo_id, l.coordinates
		FROM problems p
		JOIN lines l ON p.id = l.problem_id
		WHERE p.id = ?
		LIMIT 1
	`, routeID).Scan(&topoID, &coordinates)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query topo for route %d: %w", routeID, err)
	}

	info := &models.TopoInfo{
		TopoID:   topoID,
		ImageURL: fmt.Sprintf("%s/%d", topoAssetBaseURL, topoID),
	}

	// The coordinates column holds a JSON array of {x, y}; a row without a
	// drawn line stays nil.
	if coordinates.Valid && coordinates.String != "" {
		var points []models.TopoPoint
		if err := json.Unmarshal([]byte(coordinates.String), &points); err != nil {
			log.Printf("WARN Database: Malformed topo coordinates for route %d: %v", routeID, err)
		} else {
			info.Coordinates = points
		}
	}
	return info, nil
}
