// backend/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // boolder.db, opened read-only
}

type DataConfig struct {
	RoutesPath   string `yaml:"routes_path"`   // routes.json or routes.csv
	AreasPath    string `yaml:"areas_path"`    // areas.geojson
	ProjectsPath string `yaml:"projects_path"` // persisted project set
}

type BleauConfig struct {
	BaseURL          string `yaml:"base_url"`
	UserAgent        string `yaml:"user_agent"`
	FetchTimeoutStr  string `yaml:"fetch_timeout"`
	MediaCacheSize   int    `yaml:"media_cache_size"`
	TopoAssetBaseURL string `yaml:"topo_asset_base_url"`
	FetchTimeout     time.Duration
}

type FilterConfig struct {
	MaxDisplayRoutes int `yaml:"max_display_routes"`
	MaxSearchResults int `yaml:"max_search_results"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Data     DataConfig     `yaml:"data"`
	Bleau    BleauConfig    `yaml:"bleau"`
	Filter   FilterConfig   `yaml:"filter"`
}

var AppConfig Config

// LoadConfig reads the YAML config file into AppConfig, applies defaults for
// omitted fields, and lets PORT / BOOLDER_DB_PATH environment variables (set
// directly or through a .env loaded in main) override the file values.
func LoadConfig(configPath string) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(file, &AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		AppConfig.Server.Port = port
	}
	if dbPath := os.Getenv("BOOLDER_DB_PATH"); dbPath != "" {
		AppConfig.Database.Path = dbPath
	}

	applyDefaults(&AppConfig)

	if AppConfig.Bleau.FetchTimeoutStr != "" {
		AppConfig.Bleau.FetchTimeout, err = time.ParseDuration(AppConfig.Bleau.FetchTimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse bleau.fetch_timeout: %w", err)
		}
	} else {
		AppConfig.Bleau.FetchTimeout = 20 * time.Second
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/boolder.db"
	}
	if cfg.Data.RoutesPath == "" {
		cfg.Data.RoutesPath = "data/routes.json"
	}
	if cfg.Data.AreasPath == "" {
		cfg.Data.AreasPath = "data/areas.geojson"
	}
	if cfg.Data.ProjectsPath == "" {
		cfg.Data.ProjectsPath = "data/projects.json"
	}
	if cfg.Bleau.BaseURL == "" {
		cfg.Bleau.BaseURL = "https://bleau.info"
	}
	if cfg.Bleau.UserAgent == "" {
		// bleau.info serves a different (sometimes empty) page without a
		// desktop browser user agent.
		cfg.Bleau.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	if cfg.Bleau.MediaCacheSize <= 0 {
		cfg.Bleau.MediaCacheSize = 512
	}
	if cfg.Bleau.TopoAssetBaseURL == "" {
		cfg.Bleau.TopoAssetBaseURL = "https://assets.boolder.com/proxy/topos"
	}
	if cfg.Filter.MaxDisplayRoutes <= 0 {
		cfg.Filter.MaxDisplayRoutes = 500
	}
	if cfg.Filter.MaxSearchResults <= 0 {
		cfg.Filter.MaxSearchResults = 2000
	}
	// Search results are the narrower, more deliberate query; their cap must
	// never be below the filter cap.
	if cfg.Filter.MaxSearchResults < cfg.Filter.MaxDisplayRoutes {
		cfg.Filter.MaxSearchResults = cfg.Filter.MaxDisplayRoutes
	}
}
