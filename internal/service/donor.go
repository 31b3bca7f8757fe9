package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/sirupsen/logrus"
)

type donorService struct {
	repo   DonorRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewDonorService(repo DonorRepository, logger *logrus.Logger) DonorService {
	return &donorService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// RegisterDonor создает или обновляет профиль донора, пересчитывая допуск
func (s *donorService) RegisterDonor(ctx context.Context, donor *models.BloodDonor) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "donor",
		"method":     "RegisterDonor",
		"donor_id":   donor.ID,
		"blood_type": donor.BloodType,
	})

	if donor.MedicalConditions == nil {
		donor.MedicalConditions = []string{}
	}
	donor.IsEligible = models.CheckDonorEligibility(donor.Age, donor.WeightKg, donor.MedicalConditions)

	if err := s.repo.Upsert(ctx, donor); err != nil {
		log.WithError(err).Error("Failed to save donor in repository")
		return fmt.Errorf("service: could not register donor: %w", err)
	}

	log.WithField("is_eligible", donor.IsEligible).Info("Donor registered successfully")
	return nil
}

// GetDonor получает профиль донора
func (s *donorService) GetDonor(ctx context.Context, id string) (*models.BloodDonor, error) {
	donor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "donor",
			"method":   "GetDonor",
			"donor_id": id,
		}).WithError(err).Warn("Failed to get donor from repository")
		return nil, fmt.Errorf("service: could not get donor: %w", err)
	}
	return donor, nil
}

// ListEligibleDonors возвращает допущенных доноров; пустая группа крови - без фильтра
func (s *donorService) ListEligibleDonors(ctx context.Context, bloodType string, page, pageSize int) ([]*models.BloodDonor, error) {
	page, pageSize = normalizePage(page, pageSize)

	donors, err := s.repo.ListEligible(ctx, bloodType, page, pageSize)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "donor",
			"method":     "ListEligibleDonors",
			"blood_type": bloodType,
		}).WithError(err).Error("Failed to list donors from repository")
		return nil, fmt.Errorf("service: could not list donors: %w", err)
	}
	return donors, nil
}

// RecordDonation фиксирует донацию, если донор допущен и перерыв после прошлой истек
func (s *donorService) RecordDonation(ctx context.Context, donation *models.BloodDonation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "donor",
		"method":   "RecordDonation",
		"donor_id": donation.DonorID,
	})
	log.Info("Attempting to record a donation")

	donor, err := s.repo.GetByID(ctx, donation.DonorID)
	if err != nil {
		log.WithError(err).Warn("Attempted to record a donation for an unknown donor")
		return fmt.Errorf("service: donor %s not found: %w", donation.DonorID, err)
	}
	if !donor.IsEligible {
		return fmt.Errorf("service: donor %s: %w", donor.ID, ErrDonorIneligible)
	}

	if donation.DonationDate.IsZero() {
		donation.DonationDate = s.now()
	}
	if donation.DonationType == "" {
		donation.DonationType = models.DonationWholeBlood
	}

	history, err := s.repo.ListDonations(ctx, donor.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load donation history")
		return fmt.Errorf("service: could not load donation history: %w", err)
	}
	// история отсортирована по убыванию даты
	if len(history) > 0 && donation.DonationDate.Before(history[0].NextEligibleDate) {
		log.WithField("next_eligible_date", history[0].NextEligibleDate).Warn("Donation recorded before recovery interval elapsed")
		return fmt.Errorf("service: donor %s can donate after %s: %w",
			donor.ID, history[0].NextEligibleDate.Format(time.DateOnly), ErrDonorIneligible)
	}

	donation.NextEligibleDate = donation.DonationDate.Add(donation.DonationType.RecoveryInterval())

	if err := s.repo.AddDonation(ctx, donation); err != nil {
		log.WithError(err).Error("Failed to save donation in repository")
		return fmt.Errorf("service: could not record donation: %w", err)
	}

	log.WithField("donation_id", donation.ID).Info("Donation recorded successfully")
	return nil
}

// GetDonationHistory возвращает донации донора, новые первыми
func (s *donorService) GetDonationHistory(ctx context.Context, donorID string) ([]*models.BloodDonation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "donor",
		"method":   "GetDonationHistory",
		"donor_id": donorID,
	})

	if _, err := s.repo.GetByID(ctx, donorID); err != nil {
		log.WithError(err).Warn("Failed to get donor from repository")
		return nil, fmt.Errorf("service: could not get donor: %w", err)
	}

	donations, err := s.repo.ListDonations(ctx, donorID)
	if err != nil {
		log.WithError(err).Error("Failed to list donations from repository")
		return nil, fmt.Errorf("service: could not list donations: %w", err)
	}
	return donations, nil
}
