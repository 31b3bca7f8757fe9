package geo

import (
	"math"
)

const (
	// EarthRadiusKm - средний радиус Земли для сферической модели
	EarthRadiusKm = 6371.0

	// DefaultSpeedKmh - средняя скорость передвижения по городу
	DefaultSpeedKmh = 30.0
	// DefaultMaxMinutes - максимальное время в пути по умолчанию
	DefaultMaxMinutes = 10.0
	// MinRadiusMeters - нижняя граница радиуса поиска
	MinRadiusMeters = 500
	// MaxRadiusMeters - половина большого круга (π·R): дальше точек на сфере нет
	MaxRadiusMeters = 20_015_086
)

// Coordinate - точка на поверхности Земли в градусах
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// Valid проверяет, что широта и долгота лежат в допустимых пределах
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// DistanceKm вычисляет расстояние по дуге большого круга (формула гаверсинусов)
func DistanceKm(a, b Coordinate) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLon := degreesToRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(a.Lat))*math.Cos(degreesToRadians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// TravelMinutes оценивает время в пути в целых минутах, но не меньше одной минуты
func TravelMinutes(distanceKm, speedKmh float64) int {
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}
	minutes := int(math.Round(distanceKm / speedKmh * 60))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// RadiusKm переводит допустимое время в пути в радиус поиска
func RadiusKm(maxMinutes, speedKmh float64) float64 {
	return (maxMinutes / 60) * speedKmh
}

// RadiusMeters переводит радиус в метры в пределах [MinRadiusMeters, MaxRadiusMeters].
// NaN дает минимальный радиус.
func RadiusMeters(radiusKm float64) int {
	meters := math.Round(radiusKm * 1000)
	switch {
	case math.IsNaN(meters), meters < MinRadiusMeters:
		return MinRadiusMeters
	case meters > float64(MaxRadiusMeters):
		return MaxRadiusMeters
	}
	return int(meters)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
