package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	} else {
		h.logger.Warn("API_KEYS is empty, API key authentication is disabled")
	}

	// Поиск учреждений
	facilities := protected.Group("/facilities")
	{
		facilities.GET("/categories", h.listCategories)
		facilities.GET("/nearby", h.findNearby)
		facilities.GET("/stats", h.getStats)
	}

	// Записи на анализы
	bookings := protected.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.GET("/:id", h.getBooking)
		bookings.DELETE("/:id", h.cancelBooking)
	}

	// Реестр доноров крови
	donors := protected.Group("/donors")
	{
		donors.POST("", h.registerDonor)
		donors.GET("", h.listDonors)
		donors.GET("/:id", h.getDonor)
		donors.GET("/:id/donations", h.getDonationHistory)
		donors.POST("/:id/donations", h.recordDonation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
