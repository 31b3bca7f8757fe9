package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus - состояние записи на анализ
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// LabBooking - запись пользователя на анализ в лаборатории
type LabBooking struct {
	ID            uuid.UUID     `json:"id"`
	UserID        string        `json:"user_id"`
	LabID         string        `json:"lab_id"`
	LabName       string        `json:"lab_name"`
	TestName      string        `json:"test_name"`
	ContactName   string        `json:"contact_name"`
	ContactPhone  string        `json:"contact_phone"`
	PreferredDate time.Time     `json:"preferred_date"`
	Notes         *string       `json:"notes,omitempty"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
