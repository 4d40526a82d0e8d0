package booking

import (
	"context"
	"time"

	bookingRepo "wellnest/database/repository/booking"
	serviceRepo "wellnest/database/repository/service"
	"wellnest/models"
	"wellnest/services/notification"
)

// DefaultBookingEngine is the production capacity engine.
type DefaultBookingEngine struct {
	Repo        bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
	Notifier    notification.Dispatcher
	Settings    Settings
}

// ComputeOccupancy sums committed attendees over bookings that overlap the
// half-open window [windowStart, windowEnd). Cancelled bookings never count.
// excludeBookingID, when non-empty, drops one booking from the sum so an
// edit flow can re-check a booking against everything but itself.
func (eng *DefaultBookingEngine) ComputeOccupancy(ctx context.Context, windowStart, windowEnd time.Time, excludeBookingID string) (models.Occupancy, error) {
	if !windowStart.Before(windowEnd) {
		return models.Occupancy{}, NewInvalidWindowError("window end must be after window start")
	}

	overlapping, err := eng.Repo.FindOverlapping(ctx, windowStart, windowEnd, excludeBookingID)
	if err != nil {
		return models.Occupancy{}, err
	}

	total := 0
	for _, b := range overlapping {
		total += b.PartySize
	}
	return models.Occupancy{Bookings: overlapping, TotalPartySize: total}, nil
}

// EvaluateAdmission reports where a proposed party lands against the
// capacity ceiling. It never rejects: the studio prefers recording an
// over-capacity booking and warning the operator over turning guests away.
func (eng *DefaultBookingEngine) EvaluateAdmission(proposedPartySize int, occupancy models.Occupancy) models.AdmissionResult {
	newTotal := occupancy.TotalPartySize + proposedPartySize
	available := eng.Settings.CapacityCeiling - newTotal
	if available < 0 {
		available = 0
	}
	return models.AdmissionResult{
		NewTotal:       newTotal,
		IsOverCapacity: newTotal > eng.Settings.CapacityCeiling,
		AvailableSpots: available,
	}
}

// clampPartySize bounds party size to [1, ceiling-bound 10] at the API
// boundary. Out-of-range values are adjusted, not rejected.
func clampPartySize(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxPartySize {
		return maxPartySize
	}
	return n
}

// maxPartySize caps a single booking's party, independent of the window
// capacity ceiling.
const maxPartySize = 10
