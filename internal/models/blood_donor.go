package models

import (
	"time"

	"github.com/google/uuid"
)

// Границы допуска к донорству
const (
	MinDonorAge      = 18
	MaxDonorAge      = 65
	MinDonorWeightKg = 50.0
)

// BloodTypes - группы крови, которые принимает реестр
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// DonationType - вид донации
type DonationType string

const (
	DonationWholeBlood DonationType = "whole_blood"
	DonationPlasma     DonationType = "plasma"
	DonationPlatelets  DonationType = "platelets"
	DonationRedCells   DonationType = "red_cells"
)

// RecoveryInterval - минимальный перерыв до следующей донации
func (t DonationType) RecoveryInterval() time.Duration {
	const day = 24 * time.Hour
	switch t {
	case DonationPlasma:
		return 28 * day
	case DonationPlatelets:
		return 7 * day
	case DonationRedCells:
		return 112 * day
	default:
		return 56 * day
	}
}

// BloodDonor - профиль донора; ID совпадает с идентификатором пользователя
type BloodDonor struct {
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

// CheckDonorEligibility: возраст 18-65, вес от 50 кг, без заявленных заболеваний
func CheckDonorEligibility(age int, weightKg float64, medicalConditions []string) bool {
	if age < MinDonorAge || age > MaxDonorAge {
		return false
	}
	if weightKg < MinDonorWeightKg {
		return false
	}
	return len(medicalConditions) == 0
}

// BloodDonation - запись о сдаче крови
type BloodDonation struct {
	ID               uuid.UUID    `json:"id"`
	DonorID          string       `json:"donor_id"`
	DonationDate     time.Time    `json:"donation_date"`
	BloodBankID      string       `json:"blood_bank_id"`
	BloodBankName    string       `json:"blood_bank_name"`
	DonationType     DonationType `json:"donation_type"`
	VolumeML         int          `json:"volume_ml"`
	Notes            *string      `json:"notes,omitempty"`
	NextEligibleDate time.Time    `json:"next_eligible_date"`
	CreatedAt        time.Time    `json:"created_at"`
}
