package booking

import (
	"context"
	"strings"
	"time"

	"wellnest/models"
)

// GenerateSlots produces the ordered grid of offerable start times for one
// calendar date and service, each annotated with current occupancy. Start
// times run from the opening minute through the closing minute inclusive at
// the configured interval, in studio-local time. A fully booked slot is
// still returned as selectable; IsFullyBooked is informational only.
//
// Generation never mutates state, so the same date, service, and booking
// snapshot always yield identical output.
func (eng *DefaultBookingEngine) GenerateSlots(ctx context.Context, date time.Time, service models.Service) ([]models.SlotInfo, error) {
	duration := time.Duration(service.Duration) * time.Minute
	if duration <= 0 {
		return nil, NewValidationError("service duration must be positive")
	}

	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, eng.Settings.Location)

	var slots []models.SlotInfo
	for minute := eng.Settings.OpeningMinute; minute <= eng.Settings.ClosingMinute; minute += int(eng.Settings.SlotInterval.Minutes()) {
		start := midnight.Add(time.Duration(minute) * time.Minute)
		end := start.Add(duration)

		occupancy, err := eng.ComputeOccupancy(ctx, start.UTC(), end.UTC(), "")
		if err != nil {
			return nil, err
		}

		available := eng.Settings.CapacityCeiling - occupancy.TotalPartySize
		if available < 0 {
			available = 0
		}

		slots = append(slots, models.SlotInfo{
			Time:           start,
			TimeString:     formatSlotTime(start),
			TotalPeople:    occupancy.TotalPartySize,
			AvailableSpots: available,
			IsFullyBooked:  occupancy.TotalPartySize >= eng.Settings.CapacityCeiling,
			BookingCount:   len(occupancy.Bookings),
			Available:      true, // always selectable; overbooking is reported, not blocked
		})
	}
	return slots, nil
}

// formatSlotTime renders "8:30 AM" style labels without a leading zero.
func formatSlotTime(t time.Time) string {
	return strings.TrimPrefix(t.Format("03:04 PM"), "0")
}
