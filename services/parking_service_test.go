// backend/services/parking_service_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thimm/bleau-backend/models"
)

type fakeParkingStore struct {
	calls int
	info  *models.ParkingInfo
	err   error
}

func (f *fakeParkingStore) GetBestParking(areaName string) (*models.ParkingInfo, error) {
	f.calls++
	return f.info, f.err
}

func TestParkingLookupCachesHits(t *testing.T) {
	store := &fakeParkingStore{info: &models.ParkingInfo{ParkingName: "Parking Bas Cuvier", DistanceInMinutes: 5}}
	svc := NewParkingService(store)

	info, err := svc.Lookup("Cuvier")
	require.NoError(t, err)
	require.NotNil(t, info)

	_, err = svc.Lookup("Cuvier")
	require.NoError(t, err)
	_, err = svc.Lookup("cuvier") // same area, different casing
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls)
}

func TestParkingLookupCachesMisses(t *testing.T) {
	store := &fakeParkingStore{}
	svc := NewParkingService(store)

	info, err := svc.Lookup("Nowhere")
	require.NoError(t, err)
	assert.Nil(t, info)

	_, _ = svc.Lookup("Nowhere")
	assert.Equal(t, 1, store.calls, "a known miss must not hit the store again")
}

func TestParkingLookupDoesNotCacheErrors(t *testing.T) {
	store := &fakeParkingStore{err: fmt.Errorf("db locked")}
	svc := NewParkingService(store)

	_, err := svc.Lookup("Cuvier")
	require.Error(t, err)

	store.err = nil
	store.info = &models.ParkingInfo{ParkingName: "Parking Bas Cuvier"}
	info, err := svc.Lookup("Cuvier")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 2, store.calls, "errors are retried, not cached")
}
