package routes

import (
	"net/http"
	"time"

	"mechserve/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", h.CreateBookingHandler)
		api.GET("", h.ListBookingsHandler)
		api.GET("/:id", h.GetBookingByIDHandler)
		api.PATCH("/:id/status", h.UpdateBookingStatusHandler)
		api.DELETE("/:id", h.DeleteBookingHandler)
	}
}

// RegisterContactRoutes registers contact message endpoints.
func RegisterContactRoutes(r *gin.Engine, h *handlers.ContactHandler) {
	api := r.Group("/api/contacts")
	{
		api.POST("", h.CreateContactHandler)
		api.GET("", h.ListContactsHandler)
		api.GET("/:id", h.GetContactByIDHandler)
		api.PATCH("/:id/status", h.UpdateContactStatusHandler)
		api.DELETE("/:id", h.DeleteContactHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, contactHandler *handlers.ContactHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bookingHandler)
	RegisterContactRoutes(r, contactHandler)
	RegisterHealthRoute(r)
}
