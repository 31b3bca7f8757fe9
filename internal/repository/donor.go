package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/service"
)

const donorColumns = `
	id,
	name,
	blood_type,
	age,
	weight_kg,
	phone,
	email,
	address,
	last_donation_date,
	is_eligible,
	medical_conditions,
	emergency_contact_name,
	emergency_contact_phone,
	created_at,
	updated_at
`

const donationColumns = `
	id,
	donor_id,
	donation_date,
	blood_bank_id,
	blood_bank_name,
	donation_type,
	volume_ml,
	notes,
	next_eligible_date,
	created_at
`

type DonorRepository struct {
	db DB
}

func NewDonorRepository(db DB) service.DonorRepository {
	return &DonorRepository{db: db}
}

// Upsert создает профиль донора или перезаписывает существующий по ID
func (r *DonorRepository) Upsert(ctx context.Context, donor *models.BloodDonor) error {
	query := `
		INSERT INTO blood_donors (id, name, blood_type, age, weight_kg, phone, email, address,
			is_eligible, medical_conditions, emergency_contact_name, emergency_contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			blood_type = EXCLUDED.blood_type,
			age = EXCLUDED.age,
			weight_kg = EXCLUDED.weight_kg,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			is_eligible = EXCLUDED.is_eligible,
			medical_conditions = EXCLUDED.medical_conditions,
			emergency_contact_name = EXCLUDED.emergency_contact_name,
			emergency_contact_phone = EXCLUDED.emergency_contact_phone,
			updated_at = NOW()
		RETURNING last_donation_date, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		donor.ID,
		donor.Name,
		donor.BloodType,
		donor.Age,
		donor.WeightKg,
		donor.Phone,
		donor.Email,
		donor.Address,
		donor.IsEligible,
		donor.MedicalConditions,
		donor.EmergencyContactName,
		donor.EmergencyContactPhone,
	).Scan(&donor.LastDonationDate, &donor.CreatedAt, &donor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert blood donor: %w", err)
	}
	return nil
}

// GetByID возвращает профиль донора
func (r *DonorRepository) GetByID(ctx context.Context, id string) (*models.BloodDonor, error) {
	query := `SELECT ` + donorColumns + ` FROM blood_donors WHERE id = $1;`
	donor, err := scanDonor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("blood donor with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blood donor by id: %w", err)
	}
	return donor, nil
}

// ListEligible возвращает допущенных доноров; пустой bloodType отключает фильтр
func (r *DonorRepository) ListEligible(ctx context.Context, bloodType string, page, pageSize int) ([]*models.BloodDonor, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + donorColumns + `
		FROM blood_donors
		WHERE is_eligible AND ($1 = '' OR blood_type = $1)
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, bloodType, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list blood donors: %w", err)
	}
	defer rows.Close()

	donors := make([]*models.BloodDonor, 0)
	for rows.Next() {
		donor, err := scanDonor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blood donor row: %w", err)
		}
		donors = append(donors, donor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return donors, nil
}

// AddDonation сохраняет донацию и сдвигает дату последней донации донора в одной транзакции
func (r *DonorRepository) AddDonation(ctx context.Context, donation *models.BloodDonation) error {
	insert := `
		INSERT INTO blood_donations (donor_id, donation_date, blood_bank_id, blood_bank_name,
			donation_type, volume_ml, notes, next_eligible_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;
	`
	update := `
		UPDATE blood_donors SET
			last_donation_date = GREATEST(last_donation_date, $2),
			updated_at = NOW()
		WHERE id = $1;
	`
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insert,
			donation.DonorID,
			donation.DonationDate,
			donation.BloodBankID,
			donation.BloodBankName,
			donation.DonationType,
			donation.VolumeML,
			donation.Notes,
			donation.NextEligibleDate,
		).Scan(&donation.ID, &donation.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert blood donation: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, update, donation.DonorID, donation.DonationDate)
		if err != nil {
			return fmt.Errorf("failed to update last donation date: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("blood donor with id %s: %w", donation.DonorID, service.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add blood donation: %w", err)
	}
	return nil
}

// ListDonations возвращает историю донаций, новые первыми
func (r *DonorRepository) ListDonations(ctx context.Context, donorID string) ([]*models.BloodDonation, error) {
	query := `SELECT ` + donationColumns + `
		FROM blood_donations
		WHERE donor_id = $1
		ORDER BY donation_date DESC;
	`
	rows, err := r.db.Query(ctx, query, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blood donations: %w", err)
	}
	defer rows.Close()

	donations := make([]*models.BloodDonation, 0)
	for rows.Next() {
		donation := &models.BloodDonation{}
		err := rows.Scan(
			&donation.ID,
			&donation.DonorID,
			&donation.DonationDate,
			&donation.BloodBankID,
			&donation.BloodBankName,
			&donation.DonationType,
			&donation.VolumeML,
			&donation.Notes,
			&donation.NextEligibleDate,
			&donation.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blood donation row: %w", err)
		}
		donations = append(donations, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return donations, nil
}

func scanDonor(row pgx.Row) (*models.BloodDonor, error) {
	donor := &models.BloodDonor{}
	err := row.Scan(
		&donor.ID,
		&donor.Name,
		&donor.BloodType,
		&donor.Age,
		&donor.WeightKg,
		&donor.Phone,
		&donor.Email,
		&donor.Address,
		&donor.LastDonationDate,
		&donor.IsEligible,
		&donor.MedicalConditions,
		&donor.EmergencyContactName,
		&donor.EmergencyContactPhone,
		&donor.CreatedAt,
		&donor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return donor, nil
}
