// backend/services/parking_service.go
package services

import (
	"log"
	"sync"

	"github.com/Thimm/bleau-backend/models"
	"github.com/Thimm/bleau-backend/utils"
)

// ParkingStore is the single-row parking lookup, satisfied by the database
// package. A (nil, nil) return means no parking is known for the area.
type ParkingStore interface {
	GetBestParking(areaName string) (*models.ParkingInfo, error)
}

// ParkingService caches parking lookups per area, including misses, so
// repeated UI interactions for an area without parking stay off the database.
type ParkingService struct {
	store ParkingStore

	mu    sync.Mutex
	cache map[string]*models.ParkingInfo // nil value = known miss
}

func NewParkingService(store ParkingStore) *ParkingService {
	return &ParkingService{store: store, cache: make(map[string]*models.ParkingInfo)}
}

// Lookup returns the nearest parking for an area, (nil, nil) when none
// exists. Database errors are returned uncached so a transient failure can
// recover on the next call.
func (s *ParkingService) Lookup(areaName string) (*models.ParkingInfo, error) {
	key := utils.NormalizeAreaName(areaName)

	s.mu.Lock()
	if info, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return info, nil
	}
	s.mu.Unlock()

	info, err := s.store.GetBestParking(areaName)
	if err != nil {
		log.Printf("ParkingService: Lookup failed for area %q: %v", areaName, err)
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = info
	s.mu.Unlock()
	return info, nil
}
