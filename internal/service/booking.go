package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/webhook"
	"github.com/sirupsen/logrus"
)

type bookingService struct {
	repo      BookingRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
}

func NewBookingService(repo BookingRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateBooking создает запись на анализ в статусе pending и уведомляет лабораторию
func (s *bookingService) CreateBooking(ctx context.Context, booking *models.LabBooking) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "booking",
		"method":  "CreateBooking",
		"lab_id":  booking.LabID,
		"user_id": booking.UserID,
	})
	log.Info("Attempting to create a new lab booking")

	booking.Status = models.BookingPending
	if booking.PreferredDate.IsZero() {
		booking.PreferredDate = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		log.WithError(err).Error("Failed to create booking in repository")
		return fmt.Errorf("service: could not create booking: %w", err)
	}

	s.publish(ctx, log, webhook.EventBookingCreated, booking)

	log.WithField("booking_id", booking.ID).Info("Lab booking created successfully")
	return nil
}

// GetBooking получает запись по ID
func (s *bookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.LabBooking, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "booking",
		"method":     "GetBooking",
		"booking_id": id,
	})

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get booking from repository")
		return nil, fmt.Errorf("service: could not get booking: %w", err)
	}
	return booking, nil
}

// ListBookings возвращает записи пользователя с пагинацией
func (s *bookingService) ListBookings(ctx context.Context, userID string, page, pageSize int) ([]*models.LabBooking, error) {
	page, pageSize = normalizePage(page, pageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "booking",
		"method":    "ListBookings",
		"user_id":   userID,
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing bookings")

	bookings, err := s.repo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list bookings from repository")
		return nil, fmt.Errorf("service: could not list bookings: %w", err)
	}

	log.WithField("count", len(bookings)).Info("Bookings listed successfully")
	return bookings, nil
}

// CancelBooking отменяет запись и уведомляет лабораторию
func (s *bookingService) CancelBooking(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "booking",
		"method":     "CancelBooking",
		"booking_id": id,
	})
	log.Info("Attempting to cancel booking")

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to cancel a non-existent booking")
		return fmt.Errorf("service: booking with id %s not found for cancel: %w", id, err)
	}
	if booking.Status == models.BookingCancelled {
		return fmt.Errorf("service: booking %s: %w", id, ErrBookingClosed)
	}

	// Условное обновление в репозитории: из параллельных отмен проходит только одна
	if err := s.repo.UpdateStatus(ctx, id, models.BookingCancelled); err != nil {
		if errors.Is(err, ErrBookingClosed) {
			log.WithError(err).Warn("Booking was cancelled concurrently")
		} else {
			log.WithError(err).Error("Failed to cancel booking in repository")
		}
		return fmt.Errorf("service: could not cancel booking: %w", err)
	}
	booking.Status = models.BookingCancelled

	s.publish(ctx, log, webhook.EventBookingCancelled, booking)

	log.Info("Booking cancelled successfully")
	return nil
}

// publish ставит событие в очередь вебхуков; ошибка только логируется
func (s *bookingService) publish(ctx context.Context, log *logrus.Entry, eventType string, booking *models.LabBooking) {
	event := webhook.WebhookEvent{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Booking:   booking,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish booking webhook event")
	}
}

// IsNotFound сообщает, что ошибка означает отсутствие записи
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxPage         = 10000
)

// normalizePage приводит параметры пагинации к допустимым границам
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
