package overpass

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultURL - публичный интерпретатор Overpass API
	DefaultURL = "https://overpass-api.de/api/interpreter"
	// DefaultTimeout совпадает с подсказкой [timeout:25] в самом запросе
	DefaultTimeout = 25 * time.Second

	maxBodyBytes = 16 << 20
)

// DataSourceError - источник данных ответил неуспешным HTTP-статусом
type DataSourceError struct {
	StatusCode int
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("overpass: data source responded with status %d", e.StatusCode)
}

// Client выполняет запросы к Overpass API и нормализует ответ
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *logrus.Logger
	maxBody    int64
}

// NewClient создает клиента с собственным http.Client и заданным таймаутом
func NewClient(baseURL, userAgent string, timeout time.Duration, logger *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewClientWithHTTP(baseURL, userAgent, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP позволяет подменить http.Client (используется в тестах)
func NewClientWithHTTP(baseURL, userAgent string, httpClient *http.Client, logger *logrus.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger,
		maxBody:    maxBodyBytes,
	}
}

// Fetch отправляет запрос и возвращает нормализованные учреждения без расстояний.
// Неуспешный статус возвращается как *DataSourceError, повторов нет.
func (c *Client) Fetch(ctx context.Context, query string, category models.FacilityCategory) ([]models.Facility, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "overpass",
		"method":    "Fetch",
		"category":  category,
	})

	reqURL := c.baseURL + "?" + EncodeQuery(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("overpass: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status", resp.StatusCode).Warn("Overpass responded with non-success status")
		return nil, &DataSourceError{StatusCode: resp.StatusCode}
	}

	// Лишний байт позволяет отличить обрезанный ответ от ответа ровно на лимит
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("overpass: failed to read response body: %w", err)
	}
	if int64(len(body)) > c.maxBody {
		log.WithField("limit_bytes", c.maxBody).Warn("Overpass response exceeds size limit, treating as empty")
		return []models.Facility{}, nil
	}

	facilities, ok := Normalize(body, category)
	if !ok {
		log.Warn("Overpass response has no elements array, treating as empty")
	}

	log.WithFields(logrus.Fields{
		"count":       len(facilities),
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("Overpass elements normalized")
	return facilities, nil
}
