package overpass

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/models"
)

const addressNotAvailable = "Address not available"

// response и element - строгая схема ответа. Поля держим как json.RawMessage,
// чтобы значение неверного типа считалось отсутствующим, а не ломало разбор.
type response struct {
	Elements json.RawMessage `json:"elements"`
}

type element struct {
	ID     json.RawMessage `json:"id"`
	Type   json.RawMessage `json:"type"`
	Tags   json.RawMessage `json:"tags"`
	Lat    json.RawMessage `json:"lat"`
	Lon    json.RawMessage `json:"lon"`
	Center json.RawMessage `json:"center"`
}

type center struct {
	Lat json.RawMessage `json:"lat"`
	Lon json.RawMessage `json:"lon"`
}

// Normalize разбирает тело ответа и превращает элементы в учреждения.
// Второе значение равно false, если тело не содержит массива elements.
func Normalize(body []byte, category models.FacilityCategory) ([]models.Facility, bool) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return []models.Facility{}, false
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(resp.Elements, &raw); err != nil {
		return []models.Facility{}, false
	}

	facilities := make([]models.Facility, 0, len(raw))
	for i, r := range raw {
		var el element
		if err := json.Unmarshal(r, &el); err != nil {
			continue
		}
		f, ok := normalizeElement(el, i, category)
		if !ok {
			continue
		}
		facilities = append(facilities, f)
	}
	return facilities, true
}

func normalizeElement(el element, index int, category models.FacilityCategory) (models.Facility, bool) {
	loc, ok := elementLocation(el)
	if !ok {
		return models.Facility{}, false
	}

	tags := stringTags(el.Tags)

	name := tags["name"]
	if name == "" {
		name = category.DefaultName()
	}

	return models.Facility{
		ID:           elementID(el, index),
		Category:     category,
		Name:         name,
		Address:      ExtractAddress(tags),
		Phone:        ExtractPhone(tags),
		Website:      firstTag(tags, "contact:website", "website"),
		OpeningHours: firstTag(tags, "opening_hours"),
		Location:     loc,
		Extras:       extras(tags, category),
	}, true
}

func elementLocation(el element) (geo.Coordinate, bool) {
	lat, latOK := number(el.Lat)
	lon, lonOK := number(el.Lon)
	if latOK && lonOK {
		return geo.Coordinate{Lat: lat, Lon: lon}, true
	}

	var c center
	if len(el.Center) == 0 || json.Unmarshal(el.Center, &c) != nil {
		return geo.Coordinate{}, false
	}
	if !latOK {
		lat, latOK = number(c.Lat)
	}
	if !lonOK {
		lon, lonOK = number(c.Lon)
	}
	if !latOK || !lonOK {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lat: lat, Lon: lon}, true
}

func elementID(el element, index int) string {
	raw := bytes.TrimSpace(el.ID)
	if len(raw) > 0 {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil && n != "" {
			return n.String()
		}
	}

	elType := "element"
	var t string
	if err := json.Unmarshal(el.Type, &t); err == nil && t != "" {
		elType = t
	}
	return fmt.Sprintf("%s/%d", elType, index)
}

// number возвращает значение только для JSON-числа
func number(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

// stringTags оставляет только строковые значения тегов
func stringTags(raw json.RawMessage) map[string]string {
	tags := map[string]string{}
	if len(raw) == 0 {
		return tags
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(raw, &all); err != nil {
		return tags
	}
	for k, v := range all {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			tags[k] = s
		}
	}
	return tags
}

// ExtractAddress собирает адрес из тегов addr:* с постепенной деградацией
func ExtractAddress(tags map[string]string) string {
	street := tags["addr:street"]
	if street == "" {
		street = tags["addr:road"]
	}
	area := tags["addr:suburb"]
	if area == "" {
		area = tags["addr:neighbourhood"]
	}
	city := tags["addr:city"]
	if city == "" {
		city = tags["addr:town"]
	}
	if city == "" {
		city = tags["addr:village"]
	}

	line1 := joinNonEmpty(" ", tags["addr:housenumber"], street)
	line2 := joinNonEmpty(", ", area, city)
	line3 := joinNonEmpty(" ", tags["addr:state"], tags["addr:postcode"])

	if addr := joinNonEmpty(", ", line1, line2, line3); addr != "" {
		return addr
	}
	if full := tags["addr:full"]; full != "" {
		return full
	}
	return addressNotAvailable
}

// ExtractPhone возвращает первый заданный телефон или nil
func ExtractPhone(tags map[string]string) *string {
	return firstTag(tags, "contact:phone", "phone", "contact:telephone")
}

func firstTag(tags map[string]string, keys ...string) *string {
	for _, k := range keys {
		if v := tags[k]; v != "" {
			return &v
		}
	}
	return nil
}

var donationTypes = []struct {
	Tag   string
	Label string
}{
	{"blood:whole", "Whole Blood"},
	{"blood:plasma", "Plasma"},
	{"blood:platelets", "Platelets"},
	{"blood:stemcells", "Stem Cells"},
}

func extras(tags map[string]string, category models.FacilityCategory) map[string][]string {
	switch category {
	case models.CategoryLab:
		var services []string
		if tags["healthcare"] == "laboratory" {
			services = append(services, "Lab Tests")
		}
		if tags["amenity"] == "clinic" {
			services = append(services, "Clinic")
		}
		return map[string][]string{models.ExtraServices: nonNil(services)}
	case models.CategoryBloodBank:
		var types []string
		for _, d := range donationTypes {
			if tags[d.Tag] == "yes" {
				types = append(types, d.Label)
			}
		}
		return map[string][]string{models.ExtraDonationTypes: nonNil(types)}
	}
	return nil
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
