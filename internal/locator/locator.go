package locator

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/overpass"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCoordinate = errors.New("locator: coordinate out of range")
	ErrUnknownCategory   = errors.New("locator: unknown facility category")
)

// FacilitySource - источник учреждений по готовому запросу (Overpass API)
type FacilitySource interface {
	Fetch(ctx context.Context, query string, category models.FacilityCategory) ([]models.Facility, error)
}

// Options - параметры поиска; нулевые значения заменяются значениями по умолчанию
type Options struct {
	MaxMinutes float64
	SpeedKmh   float64
}

// withDefaults подставляет значения по умолчанию вместо неположительных и NaN
func (o Options) withDefaults(def Options) Options {
	if !(o.MaxMinutes > 0) {
		o.MaxMinutes = def.MaxMinutes
	}
	if !(o.SpeedKmh > 0) {
		o.SpeedKmh = def.SpeedKmh
	}
	return o
}

// Locator ищет ближайшие учреждения: радиус -> запрос -> источник -> ранжирование
type Locator struct {
	source   FacilitySource
	logger   *logrus.Logger
	defaults Options
}

// New создает Locator; defaults дополняются значениями 10 минут и 30 км/ч
func New(source FacilitySource, logger *logrus.Logger, defaults Options) *Locator {
	return &Locator{
		source:   source,
		logger:   logger,
		defaults: defaults.withDefaults(Options{MaxMinutes: geo.DefaultMaxMinutes, SpeedKmh: geo.DefaultSpeedKmh}),
	}
}

// Resolve возвращает итоговые параметры поиска с учетом значений по умолчанию
func (l *Locator) Resolve(opts Options) Options {
	return opts.withDefaults(l.defaults)
}

// RadiusMeters - физический радиус запроса для заданных параметров
func (l *Locator) RadiusMeters(opts Options) int {
	o := l.Resolve(opts)
	return geo.RadiusMeters(geo.RadiusKm(o.MaxMinutes, o.SpeedKmh))
}

// FindNearby возвращает учреждения категории, отсортированные по расстоянию.
// Без координат устройства возвращает пустой список без обращения к источнику.
// Ошибка источника (в том числе *overpass.DataSourceError) возвращается как есть.
func (l *Locator) FindNearby(ctx context.Context, category models.FacilityCategory, device *geo.Coordinate, opts Options) ([]models.Facility, error) {
	if device == nil {
		return []models.Facility{}, nil
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if !device.Valid() {
		return nil, ErrInvalidCoordinate
	}

	o := l.Resolve(opts)
	radius := geo.RadiusMeters(geo.RadiusKm(o.MaxMinutes, o.SpeedKmh))

	log := l.logger.WithFields(logrus.Fields{
		"component":     "locator",
		"method":        "FindNearby",
		"category":      category,
		"radius_meters": radius,
	})

	query, err := overpass.BuildQuery(*device, radius, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCategory, err)
	}

	facilities, err := l.source.Fetch(ctx, query, category)
	if err != nil {
		log.WithError(err).Warn("Facility source failed")
		return nil, err
	}

	ranked := Rank(*device, facilities)
	for i := range ranked {
		ranked[i].TravelMinutes = geo.TravelMinutes(ranked[i].DistanceKm, o.SpeedKmh)
	}

	log.WithField("count", len(ranked)).Debug("Nearby facilities ranked")
	return ranked, nil
}
