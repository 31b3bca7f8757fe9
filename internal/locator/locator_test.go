package locator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/overpass"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kmPerDegreeAtEquator - длина градуса долготы на экваторе для R = 6371 км
const kmPerDegreeAtEquator = 111.19492664455873

// fakeOverpass поднимает тестовый сервер и считает обращения к нему
func fakeOverpass(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func newTestLocator(server *httptest.Server) *Locator {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	client := overpass.NewClientWithHTTP(server.URL, "", server.Client(), logger)
	return New(client, logger, Options{})
}

func TestFindNearby_NoLocation(t *testing.T) {
	server, calls := fakeOverpass(t, http.StatusOK, `{"elements": []}`)
	loc := newTestLocator(server)

	facilities, err := loc.FindNearby(context.Background(), models.CategoryHospital, nil, Options{})

	require.NoError(t, err)
	assert.NotNil(t, facilities)
	assert.Empty(t, facilities)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestFindNearby_DataSourceError(t *testing.T) {
	server, calls := fakeOverpass(t, http.StatusInternalServerError, `oops`)
	loc := newTestLocator(server)

	facilities, err := loc.FindNearby(context.Background(), models.CategoryHospital, &geo.Coordinate{Lat: 0, Lon: 0}, Options{})

	require.Error(t, err)
	assert.Nil(t, facilities)
	var dsErr *overpass.DataSourceError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, 500, dsErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls), "no retries expected")
}

func TestFindNearby_RanksByDistance(t *testing.T) {
	element := func(id string, km float64) string {
		return fmt.Sprintf(`{"type":"node","id":%s,"lat":0,"lon":%v,"tags":{"name":"F%s"}}`, id, km/kmPerDegreeAtEquator, id)
	}
	body := `{"elements": [` + strings.Join([]string{
		element("1", 5.2),
		element("2", 1.1),
		`{"type":"way","id":99}`,
		element("3", 3.4),
	}, ",") + `]}`

	server, _ := fakeOverpass(t, http.StatusOK, body)
	loc := newTestLocator(server)

	facilities, err := loc.FindNearby(context.Background(), models.CategoryHospital, &geo.Coordinate{Lat: 0, Lon: 0}, Options{})
	require.NoError(t, err)
	require.Len(t, facilities, 3)

	assert.Equal(t, []string{"2", "3", "1"}, []string{facilities[0].ID, facilities[1].ID, facilities[2].ID})
	assert.InDelta(t, 1.1, facilities[0].DistanceKm, 1e-6)
	assert.InDelta(t, 3.4, facilities[1].DistanceKm, 1e-6)
	assert.InDelta(t, 5.2, facilities[2].DistanceKm, 1e-6)

	assert.Equal(t, 2, facilities[0].TravelMinutes)
	assert.Equal(t, 7, facilities[1].TravelMinutes)
	assert.Equal(t, 10, facilities[2].TravelMinutes)
}

func TestFindNearby_QueryRadius(t *testing.T) {
	var gotQuery atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query().Get("data"))
		_, _ = w.Write([]byte(`{"elements": []}`))
	}))
	defer server.Close()
	loc := newTestLocator(server)

	device := &geo.Coordinate{Lat: 12.5, Lon: 77.25}

	_, err := loc.FindNearby(context.Background(), models.CategoryPharmacy, device, Options{})
	require.NoError(t, err)
	assert.Contains(t, gotQuery.Load(), `node["amenity"="pharmacy"](around:5000,12.5,77.25);`)

	_, err = loc.FindNearby(context.Background(), models.CategoryPharmacy, device, Options{MaxMinutes: 1, SpeedKmh: 30})
	require.NoError(t, err)
	assert.Contains(t, gotQuery.Load(), "(around:500,12.5,77.25)")
}

func TestFindNearby_InvalidInput(t *testing.T) {
	server, calls := fakeOverpass(t, http.StatusOK, `{"elements": []}`)
	loc := newTestLocator(server)

	_, err := loc.FindNearby(context.Background(), models.FacilityCategory("vet"), &geo.Coordinate{}, Options{})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = loc.FindNearby(context.Background(), models.CategoryLab, &geo.Coordinate{Lat: 91}, Options{})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestLocator_RadiusMeters(t *testing.T) {
	loc := New(nil, logrus.New(), Options{MaxMinutes: 20})

	assert.Equal(t, 10000, loc.RadiusMeters(Options{}))
	assert.Equal(t, 500, loc.RadiusMeters(Options{MaxMinutes: 1, SpeedKmh: 30}))
	assert.Equal(t, Options{MaxMinutes: 20, SpeedKmh: 30}, loc.Resolve(Options{}))
}

func TestLocator_RadiusMetersOutOfRangeOptions(t *testing.T) {
	loc := New(nil, logrus.New(), Options{})

	assert.Equal(t, geo.MaxRadiusMeters, loc.RadiusMeters(Options{MaxMinutes: math.Inf(1)}))
	assert.Equal(t, geo.MaxRadiusMeters, loc.RadiusMeters(Options{MaxMinutes: 1e300}))
	// NaN заменяется значением по умолчанию
	assert.Equal(t, 5000, loc.RadiusMeters(Options{MaxMinutes: math.NaN(), SpeedKmh: math.NaN()}))
}
