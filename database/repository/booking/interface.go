package bookingRepo

import (
	"context"
	"time"

	"wellnest/models"
)

// BookingRepository is the persistence boundary for bookings. All capacity
// reads go through FindOverlapping; all mutation goes through Create and
// MarkCancelled.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// FindOverlapping returns non-cancelled bookings whose [start_time, end_time)
	// interval overlaps [start, end). excludeID, when non-empty, drops one
	// booking from the result (edit-flow re-checks).
	FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]models.Booking, error)
	// MarkCancelled flips status to cancelled iff it is not already cancelled,
	// as a single atomic update. Returns false when nothing matched.
	MarkCancelled(ctx context.Context, bookingID string) (bool, error)
	SearchByContact(ctx context.Context, email, phone string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	EnsureIndexes() error
}
