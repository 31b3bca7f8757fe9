package models

import (
	"github.com/shenikar/health_facility_locator/internal/geo"
)

// FacilityCategory - тип искомого медицинского учреждения
type FacilityCategory string

const (
	CategoryHospital  FacilityCategory = "hospital"
	CategoryPharmacy  FacilityCategory = "pharmacy"
	CategoryLab       FacilityCategory = "lab"
	CategoryBloodBank FacilityCategory = "blood_bank"
)

// Ключи дополнительных атрибутов учреждения
const (
	ExtraServices      = "services"
	ExtraDonationTypes = "donation_types"
)

// Categories возвращает все поддерживаемые категории в порядке отображения
func Categories() []FacilityCategory {
	return []FacilityCategory{CategoryHospital, CategoryPharmacy, CategoryLab, CategoryBloodBank}
}

// Valid сообщает, известна ли категория
func (c FacilityCategory) Valid() bool {
	switch c {
	case CategoryHospital, CategoryPharmacy, CategoryLab, CategoryBloodBank:
		return true
	}
	return false
}

// DefaultName - имя, которое получает учреждение без тега name
func (c FacilityCategory) DefaultName() string {
	switch c {
	case CategoryHospital:
		return "Hospital"
	case CategoryPharmacy:
		return "Pharmacy"
	case CategoryLab:
		return "Pathology Lab"
	case CategoryBloodBank:
		return "Blood Bank"
	}
	return "Facility"
}

// Facility - нормализованная запись об учреждении из ответа источника данных
type Facility struct {
	ID            string              `json:"id"`
	Category      FacilityCategory    `json:"category"`
	Name          string              `json:"name"`
	Address       string              `json:"address"`
	Phone         *string             `json:"phone,omitempty"`
	Website       *string             `json:"website,omitempty"`
	OpeningHours  *string             `json:"opening_hours,omitempty"`
	Location      geo.Coordinate      `json:"location"`
	DistanceKm    float64             `json:"distance_km"`
	TravelMinutes int                 `json:"travel_minutes"`
	Extras        map[string][]string `json:"extras,omitempty"`
}
