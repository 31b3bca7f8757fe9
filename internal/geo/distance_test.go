package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := [][2]Coordinate{
		{{Lat: 55.7558, Lon: 37.6173}, {Lat: 59.9343, Lon: 30.3351}},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 51.5074, Lon: -0.1278}},
		{{Lat: 0, Lon: 179.9}, {Lat: 0, Lon: -179.9}},
		{{Lat: 28.6139, Lon: 77.2090}, {Lat: 28.6140, Lon: 77.2091}},
	}

	for _, p := range pairs {
		assert.InDelta(t, DistanceKm(p[0], p[1]), DistanceKm(p[1], p[0]), 1e-9)
	}
}

func TestDistanceKm_SamePoint(t *testing.T) {
	a := Coordinate{Lat: 12.9716, Lon: 77.5946}
	assert.Equal(t, 0.0, DistanceKm(a, a))
}

func TestDistanceKm_OneDegreeAtEquator(t *testing.T) {
	d := DistanceKm(Coordinate{Lat: 0, Lon: 0}, Coordinate{Lat: 0, Lon: 1})
	assert.InDelta(t, 111.19, d, 0.5)
}

func TestTravelMinutes(t *testing.T) {
	tests := []struct {
		name     string
		km       float64
		speed    float64
		expected int
	}{
		{"floor at one minute", 0.001, 30, 1},
		{"zero distance", 0, 30, 1},
		{"five km at 30", 5, 30, 10},
		{"rounds to nearest", 1.1, 30, 2},
		{"non-positive speed uses default", 5, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TravelMinutes(tt.km, tt.speed))
		})
	}
}

func TestRadius(t *testing.T) {
	assert.InDelta(t, 5.0, RadiusKm(10, 30), 1e-9)
	assert.Equal(t, 5000, RadiusMeters(RadiusKm(10, 30)))

	assert.InDelta(t, 0.5, RadiusKm(1, 30), 1e-9)
	assert.Equal(t, 500, RadiusMeters(RadiusKm(1, 30)))

	assert.Equal(t, MinRadiusMeters, RadiusMeters(0.1))
}

func TestRadiusMeters_Clamped(t *testing.T) {
	assert.Equal(t, MaxRadiusMeters, RadiusMeters(math.Inf(1)))
	assert.Equal(t, MaxRadiusMeters, RadiusMeters(1e300))
	assert.Equal(t, MaxRadiusMeters, RadiusMeters(RadiusKm(1e300, 30)))
	assert.Equal(t, MinRadiusMeters, RadiusMeters(math.NaN()))
	assert.Equal(t, MinRadiusMeters, RadiusMeters(math.Inf(-1)))
	assert.InDelta(t, math.Pi*EarthRadiusKm*1000, float64(MaxRadiusMeters), 1)
}

func TestCoordinate_Valid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 90, Lon: -180}.Valid())
	assert.False(t, Coordinate{Lat: 90.1, Lon: 0}.Valid())
	assert.False(t, Coordinate{Lat: 0, Lon: 181}.Valid())
}
