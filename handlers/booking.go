package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	serviceRepo "wellnest/database/repository/service"
	"wellnest/services/booking"
	"wellnest/utils"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Engine   booking.BookingEngine
	Services serviceRepo.ServiceRepository
	Logger   *zap.Logger
}

func NewBookingHandler(engine booking.BookingEngine, services serviceRepo.ServiceRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Services: services, Logger: logger}
}

// CreateBooking handles POST /api/booking/events.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		UserName  string `json:"user_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		ServiceID string `json:"service_id"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		NumPeople int    `json:"num_people"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	startTime, err := parseEventTime(input.StartTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date format", err.Error())
		return
	}
	endTime, err := parseEventTime(input.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date format", err.Error())
		return
	}

	partySize := input.NumPeople
	if partySize == 0 {
		partySize = 1 // field omitted; a booking is at least one person
	}

	result, err := h.Engine.CreateBooking(c.Request.Context(), booking.CreateBookingRequest{
		UserName:  input.UserName,
		Email:     input.Email,
		Phone:     input.Phone,
		ServiceID: input.ServiceID,
		StartTime: startTime,
		EndTime:   endTime,
		PartySize: partySize,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             result.Booking.ID,
		"num_people":     result.Booking.PartySize,
		"newTotal":       result.Admission.NewTotal,
		"isOverCapacity": result.Admission.IsOverCapacity,
		"availableSpots": result.Admission.AvailableSpots,
		"start_time":     result.Booking.StartTime.Format(time.RFC3339),
		"end_time":       result.Booking.EndTime.Format(time.RFC3339),
		"status":         result.Booking.Status,
		"message":        result.Message,
	})
}

// CancelBooking handles POST /api/booking/events/:bookingID/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")

	cancelled, err := h.Engine.CancelBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      cancelled.ID,
		"status":  cancelled.Status,
		"message": "Booking cancelled successfully",
	})
}

// GetAvailableSlots handles GET /api/booking/available-slots.
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	serviceID := c.Query("service_id")
	if dateStr == "" || serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date and service_id are required")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date format", err.Error())
		return
	}

	service, err := h.Services.GetByID(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNoService) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "service not found")
			return
		}
		h.respondError(c, err)
		return
	}

	slots, err := h.Engine.GenerateSlots(c.Request.Context(), date, *service)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// SearchBookings handles GET /api/booking/my-bookings/search.
func (h *BookingHandler) SearchBookings(c *gin.Context) {
	summaries, err := h.Engine.SearchBookings(c.Request.Context(), c.Query("email"), c.Query("phone"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// ListEvents handles GET /api/booking/events.
func (h *BookingHandler) ListEvents(c *gin.Context) {
	events, err := h.Engine.ListEvents(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// respondError maps engine error codes onto HTTP statuses. Infrastructure
// errors become a generic 500 without leaking internals.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch booking.ErrorCode(err) {
	case booking.CodeValidation, booking.CodeInvalidWindow:
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case booking.CodeAlreadyCancelled:
		utils.JSONError(c, http.StatusConflict, "booking already cancelled", err.Error())
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", "please try again later")
	}
}

// parseEventTime accepts RFC 3339 with or without offset ("Z" normalized);
// times without a zone are taken as UTC.
func parseEventTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", value, time.UTC)
}
