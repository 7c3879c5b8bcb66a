// backend/services/project_service_test.go
package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thimm/bleau-backend/dataset"
)

func projectsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "projects.json")
}

func TestToggleAddsAndRemoves(t *testing.T) {
	svc, err := NewProjectService(projectsPath(t))
	require.NoError(t, err)

	added, err := svc.Toggle("la-marie-rose")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"la-marie-rose"}, svc.List())

	added, err = svc.Toggle("la-marie-rose")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, svc.List())
}

func TestToggleRejectsEmptyID(t *testing.T) {
	svc, err := NewProjectService(projectsPath(t))
	require.NoError(t, err)

	_, err = svc.Toggle("")
	assert.Error(t, err)
}

func TestProjectsPersistAcrossRestart(t *testing.T) {
	path := projectsPath(t)

	svc, err := NewProjectService(path)
	require.NoError(t, err)
	_, err = svc.Toggle("labattoir")
	require.NoError(t, err)
	_, err = svc.Toggle("la-marie-rose")
	require.NoError(t, err)

	reloaded, err := NewProjectService(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"la-marie-rose", "labattoir"}, reloaded.List())
}

func TestCorruptProjectsFileIsAnError(t *testing.T) {
	path := projectsPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewProjectService(path)
	assert.Error(t, err)
}

func TestProjectRoutesResolveAgainstDataset(t *testing.T) {
	dir := t.TempDir()
	routesPath := filepath.Join(dir, "routes.json")
	areasPath := filepath.Join(dir, "areas.geojson")
	require.NoError(t, os.WriteFile(routesPath, []byte(`[
		{"id": 1, "name": "La Marie Rose", "grade": "6a", "area_name": "Cuvier", "bleau_info_id": "la-marie-rose", "popularity": 95},
		{"id": 2, "name": "Unnamed", "grade": "5", "area_name": "Cuvier", "bleau_info_id": ""}
	]`), 0644))
	require.NoError(t, os.WriteFile(areasPath, []byte(`{"type":"FeatureCollection","features":[]}`), 0644))

	store, err := dataset.Load(routesPath, areasPath)
	require.NoError(t, err)

	svc, err := NewProjectService(projectsPath(t))
	require.NoError(t, err)
	_, err = svc.Toggle("la-marie-rose")
	require.NoError(t, err)
	_, err = svc.Toggle("gone-from-dataset")
	require.NoError(t, err)

	routes := svc.Routes(store)
	require.Len(t, routes, 1)
	assert.Equal(t, "La Marie Rose", routes[0].Name)
}
