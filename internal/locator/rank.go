package locator

import (
	"cmp"
	"slices"

	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/models"
)

// Rank возвращает новый срез, отсортированный по расстоянию от origin.
// Сортировка стабильная, исходный срез не меняется.
func Rank(origin geo.Coordinate, facilities []models.Facility) []models.Facility {
	ranked := make([]models.Facility, len(facilities))
	copy(ranked, facilities)

	for i := range ranked {
		ranked[i].DistanceKm = geo.DistanceKm(origin, ranked[i].Location)
	}

	slices.SortStableFunc(ranked, func(a, b models.Facility) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})
	return ranked
}
