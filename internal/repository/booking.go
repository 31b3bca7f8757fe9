package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/service"
	"github.com/sirupsen/logrus"
)

const bookingCacheTTL = 5 * time.Minute

const bookingColumns = `
	id,
	user_id,
	lab_id,
	lab_name,
	test_name,
	contact_name,
	contact_phone,
	preferred_date,
	notes,
	status,
	created_at,
	updated_at
`

type BookingRepository struct {
	db          DB
	redisClient *redis.Client
	logger      *logrus.Logger
}

func NewBookingRepository(db DB, redisClient *redis.Client, logger *logrus.Logger) service.BookingRepository {
	return &BookingRepository{
		db:          db,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Create создает новую запись на анализ в бд
func (r *BookingRepository) Create(ctx context.Context, booking *models.LabBooking) error {
	query := `
		INSERT INTO lab_bookings (user_id, lab_id, lab_name, test_name, contact_name, contact_phone, preferred_date, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		booking.UserID,
		booking.LabID,
		booking.LabName,
		booking.TestName,
		booking.ContactName,
		booking.ContactPhone,
		booking.PreferredDate,
		booking.Notes,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lab booking: %w", err)
	}
	return nil
}

// GetByID возвращает запись по UUID, сначала пробуя кэш
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LabBooking, error) {
	if cached, err := r.getFromCache(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	query := `SELECT ` + bookingColumns + ` FROM lab_bookings WHERE id = $1;`
	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("lab booking with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get lab booking by id: %w", err)
	}

	// Ошибка кэша не влияет на результат
	if err := r.setCache(ctx, booking); err != nil {
		r.logger.WithError(err).WithField("booking_id", id).Warn("Failed to cache lab booking")
	}
	return booking, nil
}

// ListByUser возвращает записи пользователя с пагинацией, новые первыми
func (r *BookingRepository) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]*models.LabBooking, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + bookingColumns + `
		FROM lab_bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list lab bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*models.LabBooking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lab booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return bookings, nil
}

// UpdateStatus меняет статус записи, если она еще не отменена, и сбрасывает кэш.
// Отмененная запись дает ErrBookingClosed, отсутствующая - ErrNotFound.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	query := `
		UPDATE lab_bookings SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2 AND status <> 'cancelled';
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update lab booking status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM lab_bookings WHERE id = $1);`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check lab booking existence: %w", err)
		}
		if exists {
			return fmt.Errorf("lab booking with id %s: %w", id, service.ErrBookingClosed)
		}
		return fmt.Errorf("lab booking with id %s not found for update: %w", id, service.ErrNotFound)
	}

	// Строка уже обновлена, поэтому ошибка кэша только логируется
	if err := r.invalidateCache(ctx, id); err != nil {
		r.logger.WithError(err).WithField("booking_id", id).Error("Failed to invalidate lab booking cache")
	}
	return nil
}

// scanBooking читает одну строку lab_bookings
func scanBooking(row pgx.Row) (*models.LabBooking, error) {
	booking := &models.LabBooking{}
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.LabID,
		&booking.LabName,
		&booking.TestName,
		&booking.ContactName,
		&booking.ContactPhone,
		&booking.PreferredDate,
		&booking.Notes,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func bookingCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("lab_booking:%s", id.String())
}

// getFromCache пытается получить запись из Redis; промах возвращает nil, nil
func (r *BookingRepository) getFromCache(ctx context.Context, id uuid.UUID) (*models.LabBooking, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, bookingCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lab booking from cache: %w", err)
	}

	booking := &models.LabBooking{}
	if err := json.Unmarshal(val, booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lab booking from cache: %w", err)
	}
	return booking, nil
}

func (r *BookingRepository) setCache(ctx context.Context, booking *models.LabBooking) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal lab booking for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, bookingCacheKey(booking.ID), val, bookingCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set lab booking in cache: %w", err)
	}
	return nil
}

func (r *BookingRepository) invalidateCache(ctx context.Context, id uuid.UUID) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, bookingCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate lab booking cache: %w", err)
	}
	return nil
}
