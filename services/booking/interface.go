package booking

import (
	"context"
	"time"

	"wellnest/models"
)

// CreateBookingRequest is the validated-at-the-boundary input for a new
// booking. Times are UTC instants; party size is clamped, not rejected.
type CreateBookingRequest struct {
	UserName  string
	Email     string
	Phone     string
	ServiceID string
	StartTime time.Time
	EndTime   time.Time
	PartySize int
}

// BookingEngine computes occupancy and admission decisions and owns all
// booking mutation. Occupancy is always re-read from the store; the engine
// holds no state between calls.
type BookingEngine interface {
	ComputeOccupancy(ctx context.Context, windowStart, windowEnd time.Time, excludeBookingID string) (models.Occupancy, error)
	EvaluateAdmission(proposedPartySize int, occupancy models.Occupancy) models.AdmissionResult
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	SearchBookings(ctx context.Context, email, phone string) ([]models.BookingSummary, error)
	GenerateSlots(ctx context.Context, date time.Time, service models.Service) ([]models.SlotInfo, error)
	ListEvents(ctx context.Context) ([]models.BookingEvent, error)
}
