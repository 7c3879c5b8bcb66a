// backend/handlers/project_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Thimm/bleau-backend/dataset"
	"github.com/Thimm/bleau-backend/models"
	"github.com/Thimm/bleau-backend/services"
)

// ProjectsHandler lists the bookmarked routes.
// GET /api/projects
func ProjectsHandler(svc *services.ProjectService, store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}
		respondWithJSON(w, http.StatusOK, models.ProjectsResponse{
			IDs:    svc.List(),
			Routes: svc.Routes(store),
		})
	}
}

// ToggleProjectHandler adds or removes one bookmark and persists the set.
// POST /api/projects/toggle with body {"id": "bleau-info-id"}
func ToggleProjectHandler(svc *services.ProjectService, store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
			return
		}

		var req models.ToggleProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		defer r.Body.Close()

		if req.ID == "" {
			respondWithError(w, http.StatusBadRequest, "Missing 'id' in request body")
			return
		}

		added, err := svc.Toggle(req.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to toggle project %s: %v", req.ID, err))
			return
		}

		respondWithJSON(w, http.StatusOK, models.ProjectsResponse{
			IDs:    svc.List(),
			Routes: svc.Routes(store),
			Added:  &added,
		})
	}
}
