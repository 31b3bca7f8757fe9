package service

import (
	"context"
	"fmt"

	"github.com/shenikar/health_facility_locator/internal/config"
	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/locator"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/sirupsen/logrus"
)

type facilityService struct {
	finder NearbyFinder
	repo   SearchRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewFacilityService(finder NearbyFinder, repo SearchRepository, logger *logrus.Logger, cfg *config.Config) FacilityService {
	return &facilityService{
		finder: finder,
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// FindNearby ищет учреждения рядом с устройством и записывает факт поиска в журнал
func (s *facilityService) FindNearby(ctx context.Context, userID string, category models.FacilityCategory, device *geo.Coordinate, opts locator.Options) ([]models.Facility, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "facility",
		"method":   "FindNearby",
		"category": category,
		"user_id":  userID,
	})

	if device == nil {
		log.Info("Device location unavailable, nothing to search")
	} else {
		log.Info("Searching nearby facilities")
	}

	facilities, err := s.finder.FindNearby(ctx, category, device, opts)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby facilities")
		return nil, fmt.Errorf("service: could not find nearby facilities: %w", err)
	}

	if device != nil {
		search := &models.FacilitySearch{
			UserID:       userID,
			Category:     category,
			Latitude:     device.Lat,
			Longitude:    device.Lon,
			RadiusMeters: s.finder.RadiusMeters(opts),
			ResultCount:  len(facilities),
		}
		// Журнал поисков не должен ломать основной ответ
		if err := s.repo.SaveSearch(ctx, search); err != nil {
			log.WithError(err).Warn("Failed to save facility search")
		}
	}

	log.WithField("count", len(facilities)).Info("Nearby facilities found")
	return facilities, nil
}

// SearchRadius возвращает радиус запроса в метрах для заданных параметров
func (s *facilityService) SearchRadius(opts locator.Options) int {
	return s.finder.RadiusMeters(opts)
}

// GetStats возвращает статистику поисков за настроенное окно времени
func (s *facilityService) GetStats(ctx context.Context) (*models.SearchStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "facility",
		"method":  "GetStats",
		"window":  s.cfg.StatsTimeWindowMinutes,
	})

	stats, err := s.repo.GetSearchStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get search stats from repository")
		return nil, fmt.Errorf("service: could not get search stats: %w", err)
	}

	log.WithField("unique_users", stats.UniqueUsers).Info("Search stats fetched successfully")
	return stats, nil
}
