package overpass

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestClientFetch_Success(t *testing.T) {
	query, err := BuildQuery(geo.Coordinate{Lat: 19.07, Lon: 72.87}, 5000, models.CategoryPharmacy)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, query, r.URL.Query().Get("data"))
		assert.Equal(t, "facility-locator-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements": [
			{"type": "node", "id": 101, "lat": 19.08, "lon": 72.88, "tags": {"name": "Wellness Forever"}},
			{"type": "way", "id": 102}
		]}`))
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.URL, "facility-locator-test", server.Client(), newTestLogger())
	facilities, err := client.Fetch(context.Background(), query, models.CategoryPharmacy)

	require.NoError(t, err)
	require.Len(t, facilities, 1)
	assert.Equal(t, "101", facilities[0].ID)
	assert.Equal(t, "Wellness Forever", facilities[0].Name)
	assert.Equal(t, "Address not available", facilities[0].Address)
}

func TestClientFetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.URL, "", server.Client(), newTestLogger())
	facilities, err := client.Fetch(context.Background(), "q", models.CategoryHospital)

	require.Error(t, err)
	assert.Nil(t, facilities)

	var dsErr *DataSourceError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, http.StatusTooManyRequests, dsErr.StatusCode)
}

func TestClientFetch_MalformedBodyIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.URL, "", server.Client(), newTestLogger())
	facilities, err := client.Fetch(context.Background(), "q", models.CategoryHospital)

	require.NoError(t, err)
	assert.Empty(t, facilities)
}

func TestClientFetch_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClientWithHTTP(server.URL, "", server.Client(), newTestLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx, "q", models.CategoryHospital)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", "", 0, newTestLogger())
	assert.Equal(t, DefaultURL, client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestClientFetch_OversizedBody(t *testing.T) {
	body := `{"elements": [{"type": "node", "id": 1, "lat": 1, "lon": 1}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	logger, hook := logtest.NewNullLogger()
	client := NewClientWithHTTP(server.URL, "", server.Client(), logger)

	// Ответ ровно по лимиту читается целиком
	client.maxBody = int64(len(body))
	facilities, err := client.Fetch(context.Background(), "q", models.CategoryHospital)
	require.NoError(t, err)
	assert.Len(t, facilities, 1)

	// На байт больше лимита - пустой результат и отдельное предупреждение
	hook.Reset()
	client.maxBody = int64(len(body)) - 1
	facilities, err = client.Fetch(context.Background(), "q", models.CategoryHospital)
	require.NoError(t, err)
	assert.NotNil(t, facilities)
	assert.Empty(t, facilities)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "exceeds size limit")
}
