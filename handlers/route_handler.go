// backend/handlers/route_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Thimm/bleau-backend/grades"
	"github.com/Thimm/bleau-backend/models"
	"github.com/Thimm/bleau-backend/services"
)

// decodeFilterState reads a FilterState body over permissive defaults:
// fields the client omits keep the widest setting, so a partial or empty
// body filters nothing out rather than erroring.
func decodeFilterState(r *http.Request) (models.FilterState, error) {
	spec := models.FilterState{
		GradeRange:      [2]int{grades.Min(), grades.Max()},
		SitStart:        models.SitStartAll,
		PopularityRange: [2]int{0, 100},
	}
	if r.Body == nil {
		return spec, nil
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil && err != io.EOF {
		return spec, err
	}
	return spec, nil
}

// RoutesHandler serves the full route collection.
// GET /api/routes
func RoutesHandler(svc *services.RouteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}
		respondWithJSON(w, http.StatusOK, svc.All())
	}
}

// FilterRoutesHandler evaluates a filter state against the collection.
// POST /api/routes/filter with a FilterState JSON body.
func FilterRoutesHandler(svc *services.RouteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
			return
		}
		spec, err := decodeFilterState(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, svc.Filter(spec))
	}
}

// ExportRoutesHandler renders a filter result as a CSV download.
// POST /api/routes/export with a FilterState JSON body.
func ExportRoutesHandler(svc *services.RouteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
			return
		}
		spec, err := decodeFilterState(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		data, err := svc.ExportCSV(spec)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to export routes: %v", err))
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="routes.csv"`)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

// GradesHandler serves the ordered grade scale with numeric values and color
// hints for range controls, plus the popularity color bands.
// GET /api/grades
func GradesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}
		labels := grades.Labels()
		out := models.GradesResponse{
			Grades:           make([]models.GradeInfo, 0, len(labels)),
			PopularityColors: make([]models.PopularityBand, 0, len(grades.PopularityThresholds)),
		}
		for _, label := range labels {
			out.Grades = append(out.Grades, models.GradeInfo{
				Label:      label,
				Numeric:    grades.ToNumeric(label),
				ColorHex:   grades.ColorHex(label),
				ColorClass: grades.Color(label),
			})
		}
		for _, min := range grades.PopularityThresholds {
			out.PopularityColors = append(out.PopularityColors, models.PopularityBand{
				Min:   min,
				Class: grades.PopularityColor(min),
			})
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

// AreasHandler serves the validated area feature collection.
// GET /api/areas
func AreasHandler(svc *services.RouteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}
		respondWithJSON(w, http.StatusOK, svc.Areas())
	}
}
