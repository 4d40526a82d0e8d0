package routes

import (
	"wellnest/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, sh *handlers.ServicesHandler) {
	r.GET("/healthz", handlers.Health)
	RegisterBookingRoutes(r, bh, sh)
}
