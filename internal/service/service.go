package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/locator"
	"github.com/shenikar/health_facility_locator/internal/models"
)

var (
	// ErrNotFound - запись не найдена в хранилище
	ErrNotFound = errors.New("not found")
	// ErrBookingClosed - запись на анализ уже отменена
	ErrBookingClosed = errors.New("booking is already cancelled")
	// ErrDonorIneligible - донор не допущен к донации или не истек перерыв
	ErrDonorIneligible = errors.New("donor is not eligible to donate")
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// NearbyFinder определяет контракт поиска ближайших учреждений
type NearbyFinder interface {
	FindNearby(ctx context.Context, category models.FacilityCategory, device *geo.Coordinate, opts locator.Options) ([]models.Facility, error)
	RadiusMeters(opts locator.Options) int
}

// SearchRepository определяет контракт для журнала поисков
type SearchRepository interface {
	SaveSearch(ctx context.Context, search *models.FacilitySearch) error
	GetSearchStats(ctx context.Context, minutes int) (*models.SearchStats, error)
}

// BookingRepository определяет контракт для работы с бд записей на анализы
type BookingRepository interface {
	Create(ctx context.Context, booking *models.LabBooking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LabBooking, error)
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]*models.LabBooking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error
}

// FacilityService определяет контракт бизнес-логики поиска учреждений
type FacilityService interface {
	FindNearby(ctx context.Context, userID string, category models.FacilityCategory, device *geo.Coordinate, opts locator.Options) ([]models.Facility, error)
	SearchRadius(opts locator.Options) int
	GetStats(ctx context.Context) (*models.SearchStats, error)
}

// BookingService определяет контракт бизнес-логики записей на анализы
type BookingService interface {
	CreateBooking(ctx context.Context, booking *models.LabBooking) error
	GetBooking(ctx context.Context, id uuid.UUID) (*models.LabBooking, error)
	ListBookings(ctx context.Context, userID string, page, pageSize int) ([]*models.LabBooking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

// DonorRepository определяет контракт для реестра доноров крови
type DonorRepository interface {
	Upsert(ctx context.Context, donor *models.BloodDonor) error
	GetByID(ctx context.Context, id string) (*models.BloodDonor, error)
	ListEligible(ctx context.Context, bloodType string, page, pageSize int) ([]*models.BloodDonor, error)
	AddDonation(ctx context.Context, donation *models.BloodDonation) error
	ListDonations(ctx context.Context, donorID string) ([]*models.BloodDonation, error)
}

// DonorService определяет контракт бизнес-логики реестра доноров
type DonorService interface {
	RegisterDonor(ctx context.Context, donor *models.BloodDonor) error
	GetDonor(ctx context.Context, id string) (*models.BloodDonor, error)
	ListEligibleDonors(ctx context.Context, bloodType string, page, pageSize int) ([]*models.BloodDonor, error)
	RecordDonation(ctx context.Context, donation *models.BloodDonation) error
	GetDonationHistory(ctx context.Context, donorID string) ([]*models.BloodDonation, error)
}
