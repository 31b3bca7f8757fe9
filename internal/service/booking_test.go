package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/service/mocks"
	"github.com/shenikar/health_facility_locator/internal/webhook"
	webhook_mocks "github.com/shenikar/health_facility_locator/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestBookingService — вспомогательная функция для создания сервиса с моками.
func newTestBookingService(t *testing.T) (*bookingService, *mocks.MockBookingRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockBookingRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewBookingService(repoMock, webhookMock, logger)
	return service.(*bookingService), repoMock, webhookMock
}

func TestCreateBooking_Success(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestBookingService(t)
	ctx := context.Background()
	booking := &models.LabBooking{
		UserID:        "user-1",
		LabID:         "node/42",
		TestName:      "Complete Blood Count",
		ContactName:   "Asha",
		ContactPhone:  "+91 98100 00000",
		PreferredDate: time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, booking).
		DoAndReturn(func(_ context.Context, b *models.LabBooking) error {
			assert.Equal(t, models.BookingPending, b.Status)
			b.ID = uuid.New()
			return nil
		}).
		Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventBookingCreated, event.Type)
			assert.Equal(t, booking, event.Booking)
			return nil
		}).
		Times(1)

	// Действие
	err := service.CreateBooking(ctx, booking)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, booking.ID)
}

func TestCreateBooking_PublishFailureIgnored(t *testing.T) {
	service, repoMock, webhookMock := newTestBookingService(t)
	ctx := context.Background()
	booking := &models.LabBooking{UserID: "user-1", LabID: "node/42", TestName: "Lipid Profile"}

	repoMock.EXPECT().Create(ctx, booking).Return(nil)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis unavailable"))

	err := service.CreateBooking(ctx, booking)

	require.NoError(t, err)
	assert.False(t, booking.PreferredDate.IsZero())
}

func TestCreateBooking_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestBookingService(t)
	ctx := context.Background()
	booking := &models.LabBooking{UserID: "user-1", LabID: "node/42", TestName: "HbA1c"}

	// Ожидания: при ошибке БД событие не публикуется
	repoMock.EXPECT().Create(ctx, booking).Return(errors.New("insert failed"))

	err := service.CreateBooking(ctx, booking)

	assert.Error(t, err)
}

func TestGetBooking_NotFound(t *testing.T) {
	service, repoMock, _ := newTestBookingService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetByID(ctx, id).Return(nil, fmt.Errorf("repository: booking %s: %w", id, ErrNotFound))

	booking, err := service.GetBooking(ctx, id)

	assert.Nil(t, booking)
	assert.True(t, IsNotFound(err))
}

func TestListBookings_Pagination(t *testing.T) {
	testCases := []struct {
		name             string
		page             int
		pageSize         int
		expectedPage     int
		expectedPageSize int
	}{
		{name: "Корректные значения", page: 2, pageSize: 10, expectedPage: 2, expectedPageSize: 10},
		{name: "Нулевая страница", page: 0, pageSize: 10, expectedPage: 1, expectedPageSize: 10},
		{name: "Слишком большой размер", page: 1, pageSize: 500, expectedPage: 1, expectedPageSize: 20},
		{name: "Отрицательный размер", page: 3, pageSize: -1, expectedPage: 3, expectedPageSize: 20},
		{name: "Огромная страница", page: math.MaxInt, pageSize: 100, expectedPage: 10000, expectedPageSize: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, repoMock, _ := newTestBookingService(t)
			ctx := context.Background()
			expected := []*models.LabBooking{{ID: uuid.New(), UserID: "user-1"}}

			repoMock.EXPECT().
				ListByUser(ctx, "user-1", tc.expectedPage, tc.expectedPageSize).
				Return(expected, nil).
				Times(1)

			bookings, err := service.ListBookings(ctx, "user-1", tc.page, tc.pageSize)

			require.NoError(t, err)
			assert.Equal(t, expected, bookings)
		})
	}
}

func TestCancelBooking_Success(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestBookingService(t)
	ctx := context.Background()
	id := uuid.New()
	existing := &models.LabBooking{ID: id, LabID: "node/42", Status: models.BookingPending}

	// Ожидания
	gomock.InOrder(
		repoMock.EXPECT().GetByID(ctx, id).Return(existing, nil),
		repoMock.EXPECT().UpdateStatus(ctx, id, models.BookingCancelled).Return(nil),
		webhookMock.EXPECT().
			Publish(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
				assert.Equal(t, webhook.EventBookingCancelled, event.Type)
				assert.Equal(t, models.BookingCancelled, event.Booking.Status)
				return nil
			}),
	)

	// Действие
	err := service.CancelBooking(ctx, id)

	// Проверки
	require.NoError(t, err)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	service, repoMock, _ := newTestBookingService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetByID(ctx, id).Return(&models.LabBooking{ID: id, Status: models.BookingCancelled}, nil)

	err := service.CancelBooking(ctx, id)

	assert.ErrorIs(t, err, ErrBookingClosed)
}

func TestCancelBooking_NotFound(t *testing.T) {
	service, repoMock, _ := newTestBookingService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetByID(ctx, id).Return(nil, ErrNotFound)

	err := service.CancelBooking(ctx, id)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking_ConcurrentCancelDoesNotPublish(t *testing.T) {
	service, repoMock, webhookMock := newTestBookingService(t)
	ctx := context.Background()
	id := uuid.New()

	// Кэш еще отдает pending, но в БД запись уже отменена другим запросом
	repoMock.EXPECT().GetByID(ctx, id).Return(&models.LabBooking{ID: id, Status: models.BookingPending}, nil)
	repoMock.EXPECT().
		UpdateStatus(ctx, id, models.BookingCancelled).
		Return(fmt.Errorf("lab booking with id %s: %w", id, ErrBookingClosed))
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := service.CancelBooking(ctx, id)

	assert.ErrorIs(t, err, ErrBookingClosed)
}
