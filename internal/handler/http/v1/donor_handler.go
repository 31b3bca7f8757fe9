package v1

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/service"
)

// @Summary Register blood donor
// @Description Create or update the donor profile of a user. Eligibility (age 18-65, weight from 50 kg, no medical conditions) is recalculated on every call. Requires API key.
// @Tags Donors
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param donor body RegisterDonorRequest true "Donor profile"
// @Success 201 {object} DonorResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /donors [post]
func (h *Handler) registerDonor(c *gin.Context) {
	var input RegisterDonorRequest
	log := h.logger.WithField("method", "registerDonor")

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

	model := DTOToDonorModel(input)
	if err := h.donorService.RegisterDonor(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to register donor in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToDonorResponse(model))
}

// @Summary List eligible donors
// @Description List donors currently eligible to donate, optionally filtered by blood type. Requires API key.
// @Tags Donors
// @Produce json
// @Security ApiKeyAuth
// @Param blood_type query string false "Blood type, e.g. O+ (URL-encoded as O%2B)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} DonorResponse
// @Failure 400 {object} map[string]string "Unknown blood type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /donors [get]
func (h *Handler) listDonors(c *gin.Context) {
	log := h.logger.WithField("method", "listDonors")

	// неэкранированный "+" в query превращается в пробел
	bloodType := strings.ReplaceAll(c.Query("blood_type"), " ", "+")
	if bloodType != "" && !slices.Contains(models.BloodTypes, bloodType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown blood type"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	donors, err := h.donorService.ListEligibleDonors(c.Request.Context(), bloodType, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list donors from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToDonorResponses(donors))
}

// @Summary Get donor by ID
// @Description Get the donor profile of a user. Requires API key.
// @Tags Donors
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Donor (user) ID"
// @Success 200 {object} DonorResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Donor not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /donors/{id} [get]
func (h *Handler) getDonor(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getDonor").WithField("id", id)

	donor, err := h.donorService.GetDonor(c.Request.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			log.WithError(err).Warn("Donor not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "donor not found"})
			return
		}
		log.WithError(err).Error("Failed to get donor from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDonorResponse(donor))
}

// @Summary Record donation
// @Description Record a blood donation for a donor. Rejected when the donor is not eligible or the recovery interval after the previous donation has not elapsed. Requires API key.
// @Tags Donors
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Donor (user) ID"
// @Param donation body RecordDonationRequest true "Donation"
// @Success 201 {object} DonationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Donor not found"
// @Failure 409 {object} map[string]string "Donor is not eligible to donate"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /donors/{id}/donations [post]
func (h *Handler) recordDonation(c *gin.Context) {
	var input RecordDonationRequest
	donorID := c.Param("id")
	log := h.logger.WithField("method", "recordDonation").WithField("id", donorID)

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

	model := DTOToDonationModel(donorID, input)
	if err := h.donorService.RecordDonation(c.Request.Context(), model); err != nil {
		switch {
		case service.IsNotFound(err):
			log.WithError(err).Warn("Donor not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "donor not found"})
		case errors.Is(err, service.ErrDonorIneligible):
			c.JSON(http.StatusConflict, gin.H{"error": "donor is not eligible to donate"})
		default:
			log.WithError(err).Error("Failed to record donation in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, ModelToDonationResponse(model))
}

// @Summary Donation history
// @Description List the donations of a donor, newest first. Requires API key.
// @Tags Donors
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Donor (user) ID"
// @Success 200 {array} DonationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Donor not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /donors/{id}/donations [get]
func (h *Handler) getDonationHistory(c *gin.Context) {
	donorID := c.Param("id")
	log := h.logger.WithField("method", "getDonationHistory").WithField("id", donorID)

	donations, err := h.donorService.GetDonationHistory(c.Request.Context(), donorID)
	if err != nil {
		if service.IsNotFound(err) {
			log.WithError(err).Warn("Donor not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "donor not found"})
			return
		}
		log.WithError(err).Error("Failed to get donation history from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToDonationResponses(donations))
}
