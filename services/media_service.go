// backend/services/media_service.go
package services

import (
	"context"
	"log"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/Thimm/bleau-backend/config"
	"github.com/Thimm/bleau-backend/models"
	"github.com/Thimm/bleau-backend/scraper"
	"github.com/Thimm/bleau-backend/utils"
)

// MediaService is the best-effort media lookup proxy over bleau.info. One
// instance owns the process-local cache; results (including empty ones) are
// cached per (area, id) so reopening a media panel never re-fetches, and
// in-flight lookups for the same key are collapsed to a single outbound
// request.
type MediaService struct {
	baseURL   string
	userAgent string
	client    *http.Client
	cache     *lru.Cache[string, models.MediaInfo]
	group     singleflight.Group
}

// NewMediaService builds the proxy from config. The cache is bounded; at the
// default size it comfortably covers a browsing session.
func NewMediaService(cfg config.BleauConfig) (*MediaService, error) {
	cache, err := lru.New[string, models.MediaInfo](cfg.MediaCacheSize)
	if err != nil {
		return nil, err
	}
	return &MediaService{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.FetchTimeout},
		cache:     cache,
	}, nil
}

// Lookup fetches and extracts media for one boulder. It never returns an
// error: any fetch or parse failure degrades to the empty MediaInfo, which is
// cached like a hit so a flaky upstream is not hammered. Media absence is a
// normal state for the caller, not a failure.
func (s *MediaService) Lookup(ctx context.Context, areaName, bleauInfoID string) models.MediaInfo {
	key := utils.NormalizeAreaName(areaName) + "|" + bleauInfoID

	if media, ok := s.cache.Get(key); ok {
		return media
	}

	result, _, _ := s.group.Do(key, func() (interface{}, error) {
		// Re-check under the flight: a previous flight may have populated the
		// cache between our miss and this call.
		if media, ok := s.cache.Get(key); ok {
			return media, nil
		}
		// The fetch is detached from the caller's cancellation: a client that
		// closes the media panel mid-fetch must not turn into a cached empty
		// result for everyone else. The client timeout still bounds the fetch.
		media := s.fetchAndExtract(context.WithoutCancel(ctx), areaName, bleauInfoID)
		s.cache.Add(key, media)
		return media, nil
	})
	return result.(models.MediaInfo)
}

func (s *MediaService) fetchAndExtract(ctx context.Context, areaName, bleauInfoID string) models.MediaInfo {
	pageURL := scraper.BoulderPageURL(s.baseURL, areaName, bleauInfoID)

	html, err := scraper.FetchBoulderPage(ctx, s.client, s.userAgent, pageURL)
	if err != nil {
		log.Printf("MediaService: Fetch failed for %s/%s, serving empty media: %v", areaName, bleauInfoID, err)
		return models.MediaInfo{}
	}

	media := scraper.ExtractMedia(html, s.baseURL)
	if media.Empty() {
		log.Printf("MediaService: No media found on page for %s/%s", areaName, bleauInfoID)
	}
	return media
}

// CacheLen reports how many lookups are cached. Used by the health endpoint.
func (s *MediaService) CacheLen() int {
	return s.cache.Len()
}
