package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/health_facility_locator/internal/config"
	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/locator"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/overpass"
	"github.com/shenikar/health_facility_locator/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestFacilityService — вспомогательная функция для создания сервиса с моками.
func newTestFacilityService(t *testing.T) (*facilityService, *mocks.MockNearbyFinder, *mocks.MockSearchRepository) {
	ctrl := gomock.NewController(t)
	finderMock := mocks.NewMockNearbyFinder(ctrl)
	repoMock := mocks.NewMockSearchRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
	}

	service := NewFacilityService(finderMock, repoMock, logger, cfg)
	return service.(*facilityService), finderMock, repoMock
}

func TestFindNearby_SavesSearch(t *testing.T) {
	// Подготовка
	service, finderMock, repoMock := newTestFacilityService(t)
	ctx := context.Background()
	device := &geo.Coordinate{Lat: 28.6139, Lon: 77.209}
	opts := locator.Options{MaxMinutes: 10}
	expected := []models.Facility{
		{ID: "1", Category: models.CategoryHospital, Name: "City Hospital", DistanceKm: 1.2},
		{ID: "2", Category: models.CategoryHospital, Name: "Hospital", DistanceKm: 3.4},
	}

	// Ожидания
	finderMock.EXPECT().
		FindNearby(ctx, models.CategoryHospital, device, opts).
		Return(expected, nil).
		Times(1)
	finderMock.EXPECT().RadiusMeters(opts).Return(5000).Times(1)
	repoMock.EXPECT().
		SaveSearch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, search *models.FacilitySearch) error {
			assert.Equal(t, "user-1", search.UserID)
			assert.Equal(t, models.CategoryHospital, search.Category)
			assert.Equal(t, 28.6139, search.Latitude)
			assert.Equal(t, 77.209, search.Longitude)
			assert.Equal(t, 5000, search.RadiusMeters)
			assert.Equal(t, 2, search.ResultCount)
			return nil
		}).
		Times(1)

	// Действие
	facilities, err := service.FindNearby(ctx, "user-1", models.CategoryHospital, device, opts)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, facilities)
}

func TestFindNearby_NoLocationSkipsJournal(t *testing.T) {
	// Подготовка
	service, finderMock, _ := newTestFacilityService(t)
	ctx := context.Background()

	// Ожидания: репозиторий не вызывается
	finderMock.EXPECT().
		FindNearby(ctx, models.CategoryPharmacy, nil, locator.Options{}).
		Return([]models.Facility{}, nil).
		Times(1)

	// Действие
	facilities, err := service.FindNearby(ctx, "", models.CategoryPharmacy, nil, locator.Options{})

	// Проверки
	require.NoError(t, err)
	assert.NotNil(t, facilities)
	assert.Empty(t, facilities)
}

func TestFindNearby_JournalFailureIgnored(t *testing.T) {
	// Подготовка
	service, finderMock, repoMock := newTestFacilityService(t)
	ctx := context.Background()
	device := &geo.Coordinate{Lat: 1, Lon: 1}

	// Ожидания
	finderMock.EXPECT().FindNearby(ctx, models.CategoryLab, device, gomock.Any()).Return([]models.Facility{}, nil)
	finderMock.EXPECT().RadiusMeters(gomock.Any()).Return(500)
	repoMock.EXPECT().SaveSearch(ctx, gomock.Any()).Return(errors.New("db is down"))

	// Действие
	facilities, err := service.FindNearby(ctx, "user-1", models.CategoryLab, device, locator.Options{})

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, facilities)
}

func TestFindNearby_DataSourceErrorPropagated(t *testing.T) {
	// Подготовка
	service, finderMock, _ := newTestFacilityService(t)
	ctx := context.Background()
	device := &geo.Coordinate{Lat: 1, Lon: 1}

	// Ожидания
	finderMock.EXPECT().
		FindNearby(ctx, models.CategoryHospital, device, gomock.Any()).
		Return(nil, &overpass.DataSourceError{StatusCode: 504})

	// Действие
	facilities, err := service.FindNearby(ctx, "user-1", models.CategoryHospital, device, locator.Options{})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, facilities)
	var dsErr *overpass.DataSourceError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, 504, dsErr.StatusCode)
}

func TestGetStats(t *testing.T) {
	// Подготовка
	service, _, repoMock := newTestFacilityService(t)
	ctx := context.Background()
	expected := &models.SearchStats{
		WindowMinutes: 60,
		UniqueUsers:   3,
		Searches:      map[models.FacilityCategory]int{models.CategoryHospital: 5},
	}

	// Ожидания
	repoMock.EXPECT().GetSearchStats(ctx, 60).Return(expected, nil).Times(1)

	// Действие
	stats, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestGetStats_RepositoryError(t *testing.T) {
	service, _, repoMock := newTestFacilityService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetSearchStats(ctx, 60).Return(nil, errors.New("timeout"))

	stats, err := service.GetStats(ctx)

	assert.Error(t, err)
	assert.Nil(t, stats)
}
