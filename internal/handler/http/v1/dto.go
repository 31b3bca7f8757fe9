package v1

import (
	"time"

	"github.com/google/uuid"
)

// NearbyQuery параметры поиска ближайших учреждений
// @Description Параметры поиска ближайших учреждений
type NearbyQuery struct {
	Category   string   `form:"category" validate:"required,oneof=hospital pharmacy lab blood_bank"`
	Latitude   *float64 `form:"lat" validate:"omitempty,latitude"`
	Longitude  *float64 `form:"lon" validate:"omitempty,longitude"`
	MaxMinutes float64  `form:"max_minutes" validate:"omitempty,gt=0,lte=180"`
	SpeedKmh   float64  `form:"speed_kmh" validate:"omitempty,gt=0,lte=300"`
	UserID     string   `form:"user_id" validate:"omitempty,max=128"`
}

// FacilityResponse DTO учреждения в ответе
// @Description DTO учреждения в ответе
type FacilityResponse struct {
	ID            string              `json:"id"`
	Category      string              `json:"category"`
	Name          string              `json:"name"`
	Address       string              `json:"address"`
	Phone         *string             `json:"phone,omitempty"`
	Website       *string             `json:"website,omitempty"`
	OpeningHours  *string             `json:"opening_hours,omitempty"`
	Latitude      float64             `json:"latitude"`
	Longitude     float64             `json:"longitude"`
	DistanceKm    float64             `json:"distance_km"`
	TravelMinutes int                 `json:"travel_minutes"`
	Extras        map[string][]string `json:"extras,omitempty"`
	DirectionsURL string              `json:"directions_url"`
}

// NearbyResponse DTO результата поиска
// @Description DTO результата поиска
type NearbyResponse struct {
	Category          string              `json:"category"`
	LocationAvailable bool                `json:"location_available"`
	RadiusMeters      int                 `json:"radius_meters"`
	Count             int                 `json:"count"`
	Facilities        []*FacilityResponse `json:"facilities"`
}

// CategoryResponse DTO категории учреждений
// @Description DTO категории учреждений
type CategoryResponse struct {
	Category    string `json:"category"`
	DefaultName string `json:"default_name"`
}

// CreateBookingRequest DTO для записи на анализ
// @Description DTO для записи на анализ
type CreateBookingRequest struct {
	UserID        string    `json:"user_id" validate:"required,max=128"`
	LabID         string    `json:"lab_id" validate:"required,max=128"`
	LabName       string    `json:"lab_name" validate:"max=255"`
	TestName      string    `json:"test_name" validate:"required,min=2,max=255"`
	ContactName   string    `json:"contact_name" validate:"required,min=2,max=255"`
	ContactPhone  string    `json:"contact_phone" validate:"required,min=5,max=32"`
	PreferredDate time.Time `json:"preferred_date" validate:"required"`
	Notes         *string   `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// BookingResponse DTO для ответа с информацией о записи
// @Description DTO для ответа с информацией о записи
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	LabID         string    `json:"lab_id"`
	LabName       string    `json:"lab_name"`
	TestName      string    `json:"test_name"`
	ContactName   string    `json:"contact_name"`
	ContactPhone  string    `json:"contact_phone"`
	PreferredDate time.Time `json:"preferred_date"`
	Notes         *string   `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	WindowMinutes int            `json:"window_minutes"`
	UniqueUsers   int            `json:"unique_users"`
	Searches      map[string]int `json:"searches"`
}

// RegisterDonorRequest DTO для регистрации донора крови
// @Description DTO для регистрации или обновления профиля донора
type RegisterDonorRequest struct {
	UserID                string   `json:"user_id" validate:"required,max=128"`
	Name                  string   `json:"name" validate:"required,min=2,max=255"`
	BloodType             string   `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Age                   int      `json:"age" validate:"required,gt=0,lte=120"`
	WeightKg              float64  `json:"weight_kg" validate:"required,gt=0,lte=400"`
	Phone                 string   `json:"phone" validate:"required,min=5,max=32"`
	Email                 string   `json:"email" validate:"omitempty,email,max=255"`
	Address               string   `json:"address" validate:"max=500"`
	MedicalConditions     []string `json:"medical_conditions" validate:"omitempty,max=20,dive,required,max=255"`
	EmergencyContactName  string   `json:"emergency_contact_name" validate:"max=255"`
	EmergencyContactPhone string   `json:"emergency_contact_phone" validate:"omitempty,min=5,max=32"`
}

// DonorResponse DTO для ответа с профилем донора
// @Description DTO для ответа с профилем донора
type DonorResponse struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	BloodType             string     `json:"blood_type"`
	Age                   int        `json:"age"`
	WeightKg              float64    `json:"weight_kg"`
	Phone                 string     `json:"phone"`
	Email                 string     `json:"email"`
	Address               string     `json:"address"`
	LastDonationDate      *time.Time `json:"last_donation_date,omitempty"`
	IsEligible            bool       `json:"is_eligible"`
	MedicalConditions     []string   `json:"medical_conditions"`
	EmergencyContactName  string     `json:"emergency_contact_name"`
	EmergencyContactPhone string     `json:"emergency_contact_phone"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// RecordDonationRequest DTO для записи о донации
// @Description DTO для записи о донации; без donation_date берется текущее время
type RecordDonationRequest struct {
	DonationDate  time.Time `json:"donation_date"`
	BloodBankID   string    `json:"blood_bank_id" validate:"required,max=128"`
	BloodBankName string    `json:"blood_bank_name" validate:"max=255"`
	DonationType  string    `json:"donation_type" validate:"omitempty,oneof=whole_blood plasma platelets red_cells"`
	VolumeML      int       `json:"volume_ml" validate:"required,gt=0,lte=1000"`
	Notes         *string   `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// DonationResponse DTO для ответа с информацией о донации
// @Description DTO для ответа с информацией о донации
type DonationResponse struct {
	ID               uuid.UUID `json:"id"`
	DonorID          string    `json:"donor_id"`
	DonationDate     time.Time `json:"donation_date"`
	BloodBankID      string    `json:"blood_bank_id"`
	BloodBankName    string    `json:"blood_bank_name"`
	DonationType     string    `json:"donation_type"`
	VolumeML         int       `json:"volume_ml"`
	Notes            *string   `json:"notes,omitempty"`
	NextEligibleDate time.Time `json:"next_eligible_date"`
	CreatedAt        time.Time `json:"created_at"`
}
