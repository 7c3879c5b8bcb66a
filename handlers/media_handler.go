// backend/handlers/media_handler.go
package handlers

import (
	"net/http"

	"github.com/Thimm/bleau-backend/services"
)

// MediaHandler serves best-effort media for one boulder.
// GET /api/media?area=NAME&id=BLEAU_INFO_ID
//
// Missing parameters are a 400; an upstream that yields nothing is a normal
// 200 with null fields, never an error.
func MediaHandler(svc *services.MediaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}

		areaName := r.URL.Query().Get("area")
		bleauInfoID := r.URL.Query().Get("id")
		if areaName == "" || bleauInfoID == "" {
			respondWithError(w, http.StatusBadRequest, "Missing area or id parameter")
			return
		}

		media := svc.Lookup(r.Context(), areaName, bleauInfoID)
		respondWithJSON(w, http.StatusOK, media)
	}
}
