package routes

import (
	"wellnest/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler, sh *handlers.ServicesHandler) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/services", sh.ListServices)
		booking.GET("/events", bh.ListEvents)
		booking.POST("/events", bh.CreateBooking)
		booking.POST("/events/:bookingID/cancel", bh.CancelBooking)
		booking.GET("/available-slots", bh.GetAvailableSlots)
		booking.GET("/my-bookings/search", bh.SearchBookings)
	}
}
