package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"courtside/handlers"
	"courtside/middleware"
)

// HandlerBundle groups the handlers the route tables need.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Venue   *handlers.VenueHandler
	Auth    *handlers.AuthHandler
}

// RegisterAvailabilityRoutes registers the public slot-availability endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/courts")
	{
		api.GET("/:courtID/availability", hb.Booking.GetAvailability)
	}
}

// RegisterBookingRoutes registers the booking engine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/quote", hb.Booking.QuoteBooking)
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/:bookingID", hb.Booking.GetBooking)
		api.DELETE("/:bookingID", hb.Booking.CancelBooking)
		api.GET("/user/:userID", hb.Booking.ListUserBookings)
	}
}

// RegisterAdminRoutes registers venue, court and pricing management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/auth/admin/login", hb.Auth.AdminLogin)

	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())

		api.POST("/venues", hb.Venue.CreateVenue)
		api.GET("/venues", hb.Venue.ListVenues)
		api.GET("/venues/:venueID", hb.Venue.GetVenue)
		api.PUT("/venues/:venueID", hb.Venue.UpdateVenue)
		api.PUT("/venues/:venueID/opening-hours", hb.Venue.SetOpeningHours)
		api.DELETE("/venues/:venueID", hb.Venue.DeleteVenue)

		api.POST("/courts", hb.Venue.CreateCourt)
		api.GET("/courts/:courtID", hb.Venue.GetCourt)
		api.PUT("/courts/:courtID", hb.Venue.UpdateCourt)
		api.PUT("/courts/:courtID/price-rules", hb.Venue.SetPriceRules)
		api.PUT("/courts/:courtID/blocked-rules", hb.Venue.SetBlockedRules)
		api.DELETE("/courts/:courtID", hb.Venue.DeleteCourt)

		api.POST("/global-rules", hb.Venue.CreateGlobalRule)
		api.GET("/global-rules", hb.Venue.ListGlobalRules)
		api.PATCH("/global-rules/:ruleID", hb.Venue.SetGlobalRuleActive)
		api.DELETE("/global-rules/:ruleID", hb.Venue.DeleteGlobalRule)

		api.GET("/courts/:courtID/bookings", hb.Booking.ListCourtBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthCheck)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
