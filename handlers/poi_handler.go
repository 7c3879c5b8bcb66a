// backend/handlers/poi_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Thimm/bleau-backend/models"
	"github.com/Thimm/bleau-backend/services"
)

// TopoStore is the single-row topo lookup, satisfied by the database package.
type TopoStore interface {
	GetTopoForRoute(routeID int, topoAssetBaseURL string) (*models.TopoInfo, error)
}

// ParkingHandler serves the nearest parking for an area.
// GET /api/parking?area=NAME
func ParkingHandler(svc *services.ParkingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}

		areaName := r.URL.Query().Get("area")
		if areaName == "" {
			respondWithError(w, http.StatusBadRequest, "Missing 'area' query parameter")
			return
		}

		info, err := svc.Lookup(areaName)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to look up parking for area %s: %v", areaName, err))
			return
		}
		if info == nil {
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("No parking information found for area %s", areaName))
			return
		}
		respondWithJSON(w, http.StatusOK, info)
	}
}

// TopoHandler serves the topo image reference and line for a route.
// GET /api/topo?routeId=ID
func TopoHandler(store TopoStore, topoAssetBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}

		routeIDStr := r.URL.Query().Get("routeId")
		if routeIDStr == "" {
			respondWithError(w, http.StatusBadRequest, "Missing 'routeId' query parameter")
			return
		}
		routeID, err := strconv.Atoi(routeIDStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid 'routeId' query parameter: "+routeIDStr)
			return
		}

		info, err := store.GetTopoForRoute(routeID, topoAssetBaseURL)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to look up topo for route %d: %v", routeID, err))
			return
		}
		if info == nil {
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("No topo information found for route %d", routeID))
			return
		}
		respondWithJSON(w, http.StatusOK, info)
	}
}
