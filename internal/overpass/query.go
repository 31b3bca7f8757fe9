package overpass

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/models"
)

const (
	// ResultLimit - сколько элементов просим вернуть у источника
	ResultLimit = 50
	// ServerTimeoutSeconds - подсказка таймаута для сервера Overpass
	ServerTimeoutSeconds = 25
)

// tagFilter - одно условие вида ["key"="value"]
type tagFilter struct {
	Key   string
	Value string
}

// selectors описывают предикаты тегов для каждой категории.
// Каждый вложенный срез объединяется по И, сами селекторы - по ИЛИ.
var selectors = map[models.FacilityCategory][][]tagFilter{
	models.CategoryHospital: {
		{{Key: "amenity", Value: "hospital"}},
	},
	models.CategoryPharmacy: {
		{{Key: "amenity", Value: "pharmacy"}},
	},
	models.CategoryLab: {
		{{Key: "healthcare", Value: "laboratory"}},
		{{Key: "amenity", Value: "clinic"}, {Key: "healthcare", Value: "laboratory"}},
	},
	models.CategoryBloodBank: {
		{{Key: "healthcare", Value: "blood_donation"}},
	},
}

var elementTypes = []string{"node", "way", "relation"}

// BuildQuery строит запрос Overpass QL для поиска учреждений категории в радиусе от точки
func BuildQuery(center geo.Coordinate, radiusMeters int, category models.FacilityCategory) (string, error) {
	sels, ok := selectors[category]
	if !ok {
		return "", fmt.Errorf("overpass: no tag predicate for category %q", category)
	}

	around := fmt.Sprintf("(around:%d,%s,%s)", radiusMeters, formatDegrees(center.Lat), formatDegrees(center.Lon))

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", ServerTimeoutSeconds)
	for _, sel := range sels {
		predicate := renderPredicate(sel)
		for _, et := range elementTypes {
			fmt.Fprintf(&b, "  %s%s%s;\n", et, predicate, around)
		}
	}
	fmt.Fprintf(&b, ");\nout center tags %d;\n", ResultLimit)
	return b.String(), nil
}

// EncodeQuery кодирует запрос как параметр data строки запроса
func EncodeQuery(query string) string {
	return url.Values{"data": []string{query}}.Encode()
}

func renderPredicate(filters []tagFilter) string {
	var b strings.Builder
	for _, f := range filters {
		fmt.Fprintf(&b, "[%q=%q]", f.Key, f.Value)
	}
	return b.String()
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
