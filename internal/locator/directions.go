package locator

import (
	"fmt"
	"net/url"

	"github.com/shenikar/health_facility_locator/internal/geo"
)

const directionsBaseURL = "https://www.google.com/maps/dir/"

// DirectionsURL строит ссылку на маршрут до учреждения; origin может отсутствовать
func DirectionsURL(origin *geo.Coordinate, dest geo.Coordinate) string {
	params := url.Values{}
	params.Set("api", "1")
	if origin != nil {
		params.Set("origin", formatPoint(*origin))
	}
	params.Set("destination", formatPoint(dest))
	params.Set("travelmode", "driving")
	return directionsBaseURL + "?" + params.Encode()
}

func formatPoint(c geo.Coordinate) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}
