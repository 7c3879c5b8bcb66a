// backend/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Thimm/bleau-backend/config"
	"github.com/Thimm/bleau-backend/database"
	"github.com/Thimm/bleau-backend/dataset"
	"github.com/Thimm/bleau-backend/filter"
	"github.com/Thimm/bleau-backend/handlers"
	"github.com/Thimm/bleau-backend/services"
)

func main() {
	log.Println("Starting bleau backend...")

	// Optional .env for local overrides (PORT, BOOLDER_DB_PATH).
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	cfg := config.AppConfig
	log.Printf("Configuration loaded. Server port: %s, database: %s", cfg.Server.Port, cfg.Database.Path)

	if err := database.InitDB(cfg.Database.Path); err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer database.CloseDB()
	dbStore := database.NewStore(database.DB)

	store, err := dataset.Load(cfg.Data.RoutesPath, cfg.Data.AreasPath)
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}

	routeSvc := services.NewRouteService(store, filter.Caps{
		MaxDisplayRoutes: cfg.Filter.MaxDisplayRoutes,
		MaxSearchResults: cfg.Filter.MaxSearchResults,
	})
	mediaSvc, err := services.NewMediaService(cfg.Bleau)
	if err != nil {
		log.Fatalf("Error creating media service: %v", err)
	}
	parkingSvc := services.NewParkingService(dbStore)
	projectSvc, err := services.NewProjectService(cfg.Data.ProjectsPath)
	if err != nil {
		log.Fatalf("Error loading projects: %v", err)
	}

	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := database.DB.Ping(); err != nil {
			http.Error(w, `{"status": "error", "message": "database connection error"}`, http.StatusInternalServerError)
			log.Printf("Health check failed: DB ping error: %v", err)
			return
		}
		fmt.Fprintf(w, `{"status": "ok", "routes": %d, "media_cached": %d}`+"\n",
			len(store.Routes()), mediaSvc.CacheLen())
	})

	http.HandleFunc("/api/routes", handlers.RoutesHandler(routeSvc))
	http.HandleFunc("/api/routes/filter", handlers.FilterRoutesHandler(routeSvc))
	http.HandleFunc("/api/routes/export", handlers.ExportRoutesHandler(routeSvc))
	http.HandleFunc("/api/grades", handlers.GradesHandler())
	http.HandleFunc("/api/areas", handlers.AreasHandler(routeSvc))
	http.HandleFunc("/api/media", handlers.MediaHandler(mediaSvc))
	http.HandleFunc("/api/parking", handlers.ParkingHandler(parkingSvc))
	http.HandleFunc("/api/topo", handlers.TopoHandler(dbStore, cfg.Bleau.TopoAssetBaseURL))
	http.HandleFunc("/api/projects", handlers.ProjectsHandler(projectSvc, store))
	http.HandleFunc("/api/projects/toggle", handlers.ToggleProjectHandler(projectSvc, store))

	serverAddr := ":" + cfg.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
