// backend/services/project_service.go
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Thimm/bleau-backend/dataset"
	"github.com/Thimm/bleau-backend/models"
)

// ProjectService is the persisted set of bookmarked routes, keyed by
// bleau_info_id. The set is loaded once at startup and the backing JSON file
// is rewritten on every mutation, so a crash never loses a confirmed toggle.
type ProjectService struct {
	path string

	mu  sync.Mutex
	ids map[string]struct{}
}

// NewProjectService loads the persisted set; a missing file starts an empty
// set, a corrupt file is an error so bookmarks are not silently wiped.
func NewProjectService(path string) (*ProjectService, error) {
	s := &ProjectService{path: path, ids: make(map[string]struct{})}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read projects file %s: %w", path, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode projects file %s: %w", path, err)
	}
	for _, id := range ids {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
	log.Printf("ProjectService: Loaded %d projects from %s\n", len(s.ids), path)
	return s, nil
}

// Toggle adds the id to the set if absent, removes it if present, and
// persists the new set. Returns whether the id is now in the set.
func (s *ProjectService) Toggle(bleauInfoID string) (added bool, err error) {
	if bleauInfoID == "" {
		return false, fmt.Errorf("empty project id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[bleauInfoID]; ok {
		delete(s.ids, bleauInfoID)
	} else {
		s.ids[bleauInfoID] = struct{}{}
		added = true
	}

	if err := s.saveLocked(); err != nil {
		return added, err
	}
	return added, nil
}

// List returns the bookmarked ids, sorted for stable responses.
func (s *ProjectService) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Routes resolves the bookmarked ids against the route collection, in
// collection order. Ids no longer present in the dataset are kept in the set
// but yield no route.
func (s *ProjectService) Routes(store *dataset.Store) []models.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	routes := []models.Route{}
	for _, r := range store.Routes() {
		if r.BleauInfoID == "" {
			continue
		}
		if _, ok := s.ids[r.BleauInfoID]; ok {
			routes = append(routes, r)
		}
	}
	return routes
}

// saveLocked writes the set atomically: temp file in the same directory, then
// rename. Callers hold s.mu.
func (s *ProjectService) saveLocked() error {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create projects directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "projects-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp projects file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write projects file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close projects file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace projects file: %w", err)
	}
	return nil
}
