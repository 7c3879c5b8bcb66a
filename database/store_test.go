// backend/database/store_test.go
package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// openTestDB creates an in-memory database with the slice of the boolder.db
// schema these stores touch. Max one connection so the memory database is not
// silently recreated per pooled connection.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE areas (id INTEGER PRIMARY KEY, name TEXT);
		CREATE TABLE pois (id INTEGER PRIMARY KEY, name TEXT, google_url TEXT, poi_type TEXT);
		CREATE TABLE poi_routes (poi_id INTEGER, area_id INTEGER, distance_in_minutes INTEGER, transport TEXT);
		CREATE TABLE problems (id INTEGER PRIMARY KEY, name TEXT);
		CREATE TABLE lines (id INTEGER PRIMARY KEY, problem_id INTEGER, topo_id INTEGER, coordinates TEXT);

		INSERT INTO areas VALUES (10, 'Cuvier');
		INSERT INTO pois VALUES (1, 'Parking Bas Cuvier', 'https://maps.google.com/?q=bas+cuvier', 'parking');
		INSERT INTO pois VALUES (2, 'Parking Far Away', 'https://maps.google.com/?q=far', 'parking');
		INSERT INTO pois VALUES (3, 'Gare de Bois-le-Roi', NULL, 'train_station');
		INSERT INTO poi_routes VALUES (2, 10, 25, 'car');
		INSERT INTO poi_routes VALUES (1, 10, 5, 'car');
		INSERT INTO poi_routes VALUES (3, 10, 2, 'train');

		INSERT INTO problems VALUES (42, 'La Marie Rose');
		INSERT INTO problems VALUES (43, 'No Line');
		INSERT INTO lines VALUES (1, 42, 7, '[{"x":0.1,"y":0.2},{"x":0.3,"y":0.4}]');
		INSERT INTO lines VALUES (2, 43, 8, NULL);
	`)
	require.NoError(t, err)
	return db
}

func TestGetBestParkingPicksNearest(t *testing.T) {
	store := NewStore(openTestDB(t))

	info, err := store.GetBestParking("Cuvier")
	require.NoError(t, err)
	require.NotNil(t, info)
	// Nearest parking wins; the closer train station is not poi_type parking.
	assert.Equal(t, "Parking Bas Cuvier", info.ParkingName)
	assert.Equal(t, 5, info.DistanceInMinutes)
	assert.Equal(t, "car", info.Transport)
}

func TestGetBestParkingMiss(t *testing.T) {
	store := NewStore(openTestDB(t))

	info, err := store.GetBestParking("Nowhere")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestGetTopoForRoute(t *testing.T) {
	store := NewStore(openTestDB(t))

	info, err := store.GetTopoForRoute(42, "https://assets.example.com/topos")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 7, info.TopoID)
	assert.Equal(t, "https://assets.example.com/topos/7", info.ImageURL)
	require.Len(t, info.Coordinates, 2)
	assert.InDelta(t, 0.1, info.Coordinates[0].X, 1e-9)
	assert.InDelta(t, 0.4, info.Coordinates[1].Y, 1e-9)
}

func TestGetTopoForRouteWithoutLine(t *testing.T) {
	store := NewStore(openTestDB(t))

	info, err := store.GetTopoForRoute(43, "https://assets.example.com/topos")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 8, info.TopoID)
	assert.Nil(t, info.Coordinates)
}

func TestGetTopoForRouteMiss(t *testing.T) {
	store := NewStore(openTestDB(t))

	info, err := store.GetTopoForRoute(999, "https://assets.example.com/topos")
	require.NoError(t, err)
	assert.Nil(t, info)
}
