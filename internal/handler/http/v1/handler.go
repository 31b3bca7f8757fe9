package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/health_facility_locator/internal/config"
	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/locator"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/overpass"
	"github.com/shenikar/health_facility_locator/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	facilityService service.FacilityService
	bookingService  service.BookingService
	donorService    service.DonorService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(facilityService service.FacilityService, bookingService service.BookingService, donorService service.DonorService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		facilityService: facilityService,
		bookingService:  bookingService,
		donorService:    donorService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary List facility categories
// @Description Get all supported facility categories with their default display names. Requires API key.
// @Tags Facilities
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} CategoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /facilities/categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	categories := models.Categories()
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = CategoryResponse{
			Category:    string(category),
			DefaultName: category.DefaultName(),
		}
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Find nearby facilities
// @Description Find hospitals, pharmacies, labs or blood banks around the device, ranked by distance. Without lat/lon an empty list is returned. Requires API key.
// @Tags Facilities
// @Produce json
// @Security ApiKeyAuth
// @Param category query string true "Facility category" Enums(hospital, pharmacy, lab, blood_bank)
// @Param lat query number false "Device latitude"
// @Param lon query number false "Device longitude"
// @Param max_minutes query number false "Maximum travel time in minutes" default(10)
// @Param speed_kmh query number false "Assumed travel speed in km/h" default(30)
// @Param user_id query string false "User ID for the search journal"
// @Success 200 {object} NearbyResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]any "Facility data source error"
// @Failure 504 {object} map[string]string "Facility data source timeout"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /facilities/nearby [get]
func (h *Handler) findNearby(c *gin.Context) {
	var input NearbyQuery
	log := h.logger.WithField("method", "findNearby")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if (input.Latitude == nil) != (input.Longitude == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be provided together"})
		return
	}

	var device *geo.Coordinate
	if input.Latitude != nil {
		device = &geo.Coordinate{Lat: *input.Latitude, Lon: *input.Longitude}
	}

	category := models.FacilityCategory(input.Category)
	opts := locator.Options{MaxMinutes: input.MaxMinutes, SpeedKmh: input.SpeedKmh}

	facilities, err := h.facilityService.FindNearby(c.Request.Context(), input.UserID, category, device, opts)
	if err != nil {
		h.respondSearchError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, NearbyResponse{
		Category:          input.Category,
		LocationAvailable: device != nil,
		RadiusMeters:      h.facilityService.SearchRadius(opts),
		Count:             len(facilities),
		Facilities:        ModelsToFacilityResponses(facilities, device),
	})
}

// respondSearchError переводит ошибки поиска в HTTP-ответ
func (h *Handler) respondSearchError(c *gin.Context, log *logrus.Entry, err error) {
	var dsErr *overpass.DataSourceError
	switch {
	case errors.As(err, &dsErr):
		log.WithError(err).WithField("upstream_status", dsErr.StatusCode).Error("Facility data source returned an error")
		c.JSON(http.StatusBadGateway, gin.H{"error": "facility data source unavailable", "upstream_status": dsErr.StatusCode})
	case errors.Is(err, locator.ErrUnknownCategory), errors.Is(err, locator.ErrInvalidCoordinate):
		log.WithError(err).Warn("Invalid search input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		log.WithError(err).Error("Facility data source timed out")
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "facility data source timeout"})
	default:
		log.WithError(err).Error("Failed to find nearby facilities in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get search statistics
// @Description Get unique users and per-category search counts within the configured time window. Requires API key.
// @Tags Facilities
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /facilities/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.facilityService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Book a lab test
// @Description Create a lab test booking. A booking.created webhook event is queued. Requires API key.
// @Tags Bookings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param booking body CreateBookingRequest true "Lab booking request"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bookings [post]
func (h *Handler) createBooking(c *gin.Context) {
	var input CreateBookingRequest
	log := h.logger.WithField("method", "createBooking")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToBookingModel(input)
	if err := h.bookingService.CreateBooking(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create booking in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToBookingResponse(model))
}

// @Summary List user bookings
// @Description Get a paginated list of lab bookings of a user. Requires API key.
// @Tags Bookings
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} BookingResponse
// @Failure 400 {object} map[string]string "Missing user_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bookings [get]
func (h *Handler) listBookings(c *gin.Context) {
	log := h.logger.WithField("method", "listBookings")
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list bookings from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToBookingResponses(bookings))
}

// @Summary Get booking by ID
// @Description Get a single lab booking by its ID. Requires API key.
// @Tags Bookings
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} BookingResponse
// @Failure 400 {object} map[string]string "Invalid booking ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bookings/{id} [get]
func (h *Handler) getBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}
	log := h.logger.WithField("method", "getBooking").WithField("id", id)

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			log.WithError(err).Warn("Booking not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.WithError(err).Error("Failed to get booking from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToBookingResponse(booking))
}

// @Summary Cancel a booking
// @Description Cancel a lab booking by its ID. A booking.cancelled webhook event is queued. Requires API key.
// @Tags Bookings
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid booking ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 409 {object} map[string]string "Booking already cancelled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bookings/{id} [delete]
func (h *Handler) cancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}
	log := h.logger.WithField("method", "cancelBooking").WithField("id", id)

	if err := h.bookingService.CancelBooking(c.Request.Context(), id); err != nil {
		switch {
		case service.IsNotFound(err):
			log.WithError(err).Warn("Booking not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, service.ErrBookingClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "booking is already cancelled"})
		default:
			log.WithError(err).Error("Failed to cancel booking in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
