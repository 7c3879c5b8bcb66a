// backend/database/parking_store.go
package database

import (
	"database/sql"
	"fmt"

	"github.com/Thimm/bleau-backend/models"
)

// Store wraps the read-only boolder.db lookups. A struct rather than
// package-level functions so services can take it as an interface in tests.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// GetBestParking returns the nearest parking for an area, (nil, nil) when the
// area has none.
func (s *Store) GetBestParking(areaName string) (*models.ParkingInfo, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var (
		name      string
		googleURL sql.NullString
		distance  int
		transport sql.NullString
	)
	err := s.DB.QueryRow(`
		SELECT p.name, p.google_url, pr.distance_in_minutes, pr.transport
		FROM areas a
		JOIN poi_routes pr ON a.id = pr.area_id
		JOIN pois p ON pr.poi_id = p.id
		WHERE a.name = ? AND p.poi_type = 'parking'
		ORDER BY pr.distance_in_minutes ASC
		LIMIT 1
	`, areaName).Scan(&name, &googleURL, &distance, &transport)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query parking for area %q: %w", areaName, err)
	}

	return &models.ParkingInfo{
		ParkingName:       name,
		GoogleURL:         googleURL.String,
		DistanceInMinutes: distance,
		Transport:         transport.String,
	}, nil
}
